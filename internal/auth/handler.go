// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/shreeram-borwells/srb-backend/internal/core"
	"github.com/shreeram-borwells/srb-backend/internal/middleware"
	"github.com/shreeram-borwells/srb-backend/internal/roster"
)

type Handler struct {
	service   *Service
	roster    *roster.Store
	validator *validator.Validate
}

func NewHandler(service *Service, rosterStore *roster.Store) *Handler {
	return &Handler{
		service:   service,
		roster:    rosterStore,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.GetMe)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			core.JSONError(w, core.UnauthorizedError("User not found"))
		case errors.Is(err, ErrIncorrectPassword):
			core.JSONError(w, core.UnauthorizedError("Incorrect password"))
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, LoginResponse{
		Token: result.Token,
		User:  roster.ToUserResponse(result.User),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r)

	if err := h.service.Logout(r.Context(), token); err != nil {
		core.JSONError(w, core.TokenInvalidError())
		return
	}

	core.NoContent(w)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.roster.Get(userID)
	if err != nil {
		core.NotFound(w, "user")
		return
	}

	core.OK(w, MeResponse{
		User:         roster.ToUserResponse(user),
		Capabilities: CapabilitiesFor(user.Role),
	})
}
