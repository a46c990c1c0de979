// AngelaMos | 2026
// handler.go

package ledger

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/shreeram-borwells/srb-backend/internal/core"
	"github.com/shreeram-borwells/srb-backend/internal/metrics"
	"github.com/shreeram-borwells/srb-backend/internal/middleware"
)

type Handler struct {
	store     *Store
	validator *validator.Validate
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store:     store,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the ledger under staff-only middleware. The summary
// endpoint is restricted further to Super Admins.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, staffOnly, superAdminOnly func(http.Handler) http.Handler,
) {
	r.Route("/ledger", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(staffOnly)

		r.Route("/bores", func(r chi.Router) {
			r.Get("/", h.ListBores)
			r.Post("/", h.AddBore)
			r.Post("/{boreID}/payments", h.RecordPayment)
			r.Post("/{boreID}/status", h.ToggleStatus)
			r.Delete("/{boreID}", h.DeleteBore)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.ListExpenses)
			r.Post("/", h.AddExpense)
			r.Delete("/{expenseID}", h.DeleteExpense)
		})

		r.With(superAdminOnly).Get("/summary", h.GetSummary)
	})
}

func (h *Handler) ListBores(w http.ResponseWriter, r *http.Request) {
	active, completed := h.store.ListBores()
	core.OK(w, BoreListResponse{Active: active, Completed: completed})
}

func (h *Handler) AddBore(w http.ResponseWriter, r *http.Request) {
	var req AddBoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	bore, err := h.store.AddBore(AddBoreInput{
		Name:        req.Name,
		Size:        req.Size,
		Depth:       req.Depth,
		Date:        req.Date,
		TotalCost:   req.TotalCost,
		CostGiven:   req.CostGiven,
		AuditorName: middleware.GetUserName(r.Context()),
	})
	if err != nil {
		core.BadRequest(w, "name, size, date and cost fields are required")
		return
	}

	metrics.LedgerMutations.WithLabelValues("bore_added").Inc()
	core.Created(w, bore)
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "boreID"))
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	bore, err := h.store.RecordPayment(id, req.Amount)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "bore")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	if req.Amount > 0 {
		metrics.LedgerMutations.WithLabelValues("payment_recorded").Inc()
	}
	core.OK(w, bore)
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "boreID"))
	if !ok {
		return
	}

	bore, err := h.store.ToggleStatus(id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "bore")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	metrics.LedgerMutations.WithLabelValues("status_toggled").Inc()
	core.OK(w, bore)
}

func (h *Handler) DeleteBore(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "boreID"))
	if !ok {
		return
	}

	if err := h.store.DeleteBore(id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "bore")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	metrics.LedgerMutations.WithLabelValues("bore_deleted").Inc()
	core.NoContent(w)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	core.OK(w, ExpenseListResponse{Expenses: h.store.ListExpenses()})
}

func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	expense, err := h.store.AddExpense(AddExpenseInput{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		AuditorName: middleware.GetUserName(r.Context()),
	})
	if err != nil {
		core.BadRequest(w, "date, category and a positive amount are required")
		return
	}

	metrics.LedgerMutations.WithLabelValues("expense_added").Inc()
	core.Created(w, expense)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, chi.URLParam(r, "expenseID"))
	if !ok {
		return
	}

	if err := h.store.DeleteExpense(id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "expense")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	metrics.LedgerMutations.WithLabelValues("expense_deleted").Inc()
	core.NoContent(w)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.store.ComputeTotals())
}

func parseID(w http.ResponseWriter, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}
