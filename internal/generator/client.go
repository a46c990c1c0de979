// AngelaMos | 2026
// client.go

// Package generator drafts Statement of Work outlines through an external
// text-generation API. The one interesting part is the retry wrapper: rate
// limits back off exponentially, everything else is retried immediately,
// and the last attempt's error is what the caller sees.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/shreeram-borwells/srb-backend/internal/config"
	"github.com/shreeram-borwells/srb-backend/internal/metrics"
)

// ErrNotConfigured means no API key is present. The feature is disabled;
// nothing else in the system is affected.
var ErrNotConfigured = errors.New("generator API key is not configured")

// ErrMalformedResponse means the upstream answered 2xx but without the
// expected generated text.
var ErrMalformedResponse = errors.New("generation response was empty or malformed")

const systemPrompt = `Act as an expert technical sales engineer for Shree Ram Borwells, specializing in borewell drilling. Your task is to generate a professional, concise Statement of Work (SOW) outline based on the user's input. The response must be structured using Markdown headings (##, ###) and clear bullet points, relevant to modern borewell drilling practices. Do not include any introductory or concluding remarks outside the generated SOW content.`

type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	maxRetries int

	// sleep and jitter are injectable for tests.
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() time.Duration
}

func NewClient(cfg config.GeneratorConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		maxRetries: cfg.MaxRetries,
		sleep:      sleepCtx,
		jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(time.Second)))
		},
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Configured reports whether the drafting feature is usable.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SOWInput carries the proposal parameters. ClientName may be empty.
type SOWInput struct {
	ProjectName string
	ClientName  string
	ProjectType string
	DepthFeet   int
	SoilType    string
}

func (in SOWInput) userQuery() string {
	clientName := in.ClientName
	if clientName == "" {
		clientName = "TBD/Internal Reference"
	}

	return fmt.Sprintf(
		`Draft an SOW outline for a new bore project titled %q. The client is %s. The specific service is %s. The required depth is %d feet. The known ground condition is %s. Focus on high-level scope, deliverables (including casing and pumping), and potential schedule phases.`,
		in.ProjectName, clientName, in.ProjectType, in.DepthFeet, in.SoilType,
	)
}

// SOWResult is the generated outline plus any grounding attributions the
// upstream included.
type SOWResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// GenerateSOW runs the full drafting flow: config check, request build,
// retried POST, response extraction.
func (c *Client) GenerateSOW(ctx context.Context, in SOWInput) (*SOWResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: in.userQuery()}}},
		},
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		Tools:             []tool{{GoogleSearch: map[string]any{}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := c.fetchWithRetry(ctx, body)
	if err != nil {
		return nil, err
	}

	return extractResult(respBody)
}

// fetchWithRetry posts the payload up to maxRetries times. A 429 with
// attempts remaining sleeps 2^i seconds plus up to one second of jitter.
// Any other failure retries immediately; the final attempt's error wins.
func (c *Client) fetchWithRetry(ctx context.Context, body []byte) ([]byte, error) {
	url := c.endpoint + "?key=" + c.apiKey

	var lastErr error
	for i := 0; i < c.maxRetries; i++ {
		metrics.GeneratorAttempts.Inc()

		respBody, status, err := c.post(ctx, url, body)
		if err == nil && status == http.StatusTooManyRequests &&
			i < c.maxRetries-1 {
			delay := time.Duration(math.Pow(2, float64(i)))*time.Second +
				c.jitter()
			if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
				return nil, sleepErr
			}
			continue
		}

		if err == nil && status >= 200 && status < 300 {
			return respBody, nil
		}

		if err == nil {
			err = fmt.Errorf(
				"http error: status %d - %s",
				status,
				strings.TrimSpace(string(respBody)),
			)
		}

		lastErr = err
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

func (c *Client) post(
	ctx context.Context,
	url string,
	body []byte,
) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("post request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

// extractResult pulls the generated text and filters attributions down to
// entries carrying both a uri and a title.
func extractResult(body []byte) (*SOWResult, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, ErrMalformedResponse
	}

	if len(resp.Candidates) == 0 {
		return nil, ErrMalformedResponse
	}

	candidate := resp.Candidates[0]
	if len(candidate.Content.Parts) == 0 ||
		candidate.Content.Parts[0].Text == "" {
		return nil, ErrMalformedResponse
	}

	sources := make([]Source, 0)
	if candidate.GroundingMetadata != nil {
		for _, attr := range candidate.GroundingMetadata.GroundingAttributions {
			if attr.Web.URI == "" || attr.Web.Title == "" {
				continue
			}
			sources = append(sources, Source{
				URI:   attr.Web.URI,
				Title: attr.Web.Title,
			})
		}
	}

	return &SOWResult{
		Text:    candidate.Content.Parts[0].Text,
		Sources: sources,
	}, nil
}
