// AngelaMos | 2026
// handler.go

package generator

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/shreeram-borwells/srb-backend/internal/core"
	"github.com/shreeram-borwells/srb-backend/internal/metrics"
)

type Handler struct {
	client    *Client
	validator *validator.Validate
}

func NewHandler(client *Client) *Handler {
	return &Handler{
		client:    client,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts drafting for dashboard staff, behind the tighter
// per-user rate limit.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, staffOnly func(http.Handler) http.Handler,
	limiter func(http.Handler) http.Handler,
) {
	r.Route("/generator", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(staffOnly)
		if limiter != nil {
			r.Use(limiter)
		}

		r.Post("/sow", h.GenerateSOW)
	})
}

func (h *Handler) GenerateSOW(w http.ResponseWriter, r *http.Request) {
	var req GenerateSOWRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.client.GenerateSOW(r.Context(), SOWInput{
		ProjectName: req.ProjectName,
		ClientName:  req.ClientName,
		ProjectType: req.ProjectType,
		DepthFeet:   req.DepthFeet,
		SoilType:    req.SoilType,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			metrics.GeneratorRequests.WithLabelValues("unconfigured").Inc()
			core.JSONError(w, core.ServiceUnavailableError(
				"API Key is not configured for the generator"))
		case errors.Is(err, ErrMalformedResponse):
			metrics.GeneratorRequests.WithLabelValues("malformed").Inc()
			core.JSONError(w, core.UpstreamError(
				"Could not generate the proposal. The response was empty or malformed"))
		default:
			metrics.GeneratorRequests.WithLabelValues("failed").Inc()
			core.JSONError(w, core.UpstreamError(
				"Failed to connect to the drafting service. Please try again"))
		}
		return
	}

	metrics.GeneratorRequests.WithLabelValues("success").Inc()
	core.OK(w, result)
}
