// AngelaMos | 2026
// client_test.go

package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreeram-borwells/srb-backend/internal/config"
)

func testClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	c := NewClient(config.GeneratorConfig{
		Endpoint:   endpoint,
		APIKey:     "test-key",
		MaxRetries: 5,
		Timeout:    5 * time.Second,
	})
	// No real sleeping in tests.
	c.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	c.jitter = func() time.Duration { return 0 }
	return c
}

func successBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func sowInput() SOWInput {
	return SOWInput{
		ProjectName: "Sharma Farm Bore",
		ProjectType: "New Borewell Drilling",
		DepthFeet:   1000,
		SoilType:    "Rocky",
	}
}

func TestGenerateSOWRetriesRateLimit(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			//nolint:errcheck
			_, _ = w.Write([]byte(successBody("## SOW Outline")))
		}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	result, err := c.GenerateSOW(context.Background(), sowInput())
	require.NoError(t, err)

	assert.Equal(t, 3, attempts)
	assert.Equal(t, "## SOW Outline", result.Text)
	assert.Empty(t, result.Sources)
}

func TestGenerateSOWExhaustsRetryBudget(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusTooManyRequests)
		}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.GenerateSOW(context.Background(), sowInput())

	require.Error(t, err)
	assert.Equal(t, 5, attempts)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateSOWServerErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck
			_, _ = w.Write([]byte("invalid argument"))
		}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.GenerateSOW(context.Background(), sowInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestGenerateSOWWithoutKeySkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	c := testClient(t, srv.URL)
	c.apiKey = ""

	_, err := c.GenerateSOW(context.Background(), sowInput())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, called)
}

func TestGenerateSOWRequestShape(t *testing.T) {
	var captured generateRequest
	var query string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			//nolint:errcheck
			_, _ = w.Write([]byte(successBody("ok")))
		}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	in := sowInput()
	in.ClientName = ""
	_, err := c.GenerateSOW(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "key=test-key", query)
	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "Sharma Farm Bore")
	// Absent client name falls back to the placeholder.
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "TBD/Internal Reference")
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "1000 feet")

	require.NotNil(t, captured.SystemInstruction)
	assert.Contains(t,
		captured.SystemInstruction.Parts[0].Text, "Shree Ram Borwells")
	require.Len(t, captured.Tools, 1)
	assert.NotNil(t, captured.Tools[0].GoogleSearch)
}

func TestGenerateSOWMalformedResponse(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`not json`,
	}

	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				//nolint:errcheck
				_, _ = w.Write([]byte(body))
			}))

		c := testClient(t, srv.URL)
		_, err := c.GenerateSOW(context.Background(), sowInput())
		assert.ErrorIs(t, err, ErrMalformedResponse, "body: %s", body)

		srv.Close()
	}
}

func TestGenerateSOWFiltersAttributions(t *testing.T) {
	body := `{"candidates":[{
		"content":{"parts":[{"text":"## SOW"}]},
		"groundingMetadata":{"groundingAttributions":[
			{"web":{"uri":"https://example.com/a","title":"Drilling Guide"}},
			{"web":{"uri":"https://example.com/b"}},
			{"web":{"title":"No URI"}},
			{"web":{"uri":"https://example.com/c","title":"Casing Standards"}}
		]}
	}]}`

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			//nolint:errcheck
			_, _ = w.Write([]byte(body))
		}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	result, err := c.GenerateSOW(context.Background(), sowInput())
	require.NoError(t, err)

	require.Len(t, result.Sources, 2)
	assert.Equal(t, "Drilling Guide", result.Sources[0].Title)
	assert.Equal(t, "https://example.com/c", result.Sources[1].URI)
}
