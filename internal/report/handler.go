// AngelaMos | 2026
// handler.go

package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shreeram-borwells/srb-backend/internal/ledger"
	"github.com/shreeram-borwells/srb-backend/internal/metrics"
)

type Handler struct {
	store *ledger.Store
	now   func() time.Time
}

func NewHandler(store *ledger.Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// RegisterRoutes mounts the download for Super Admins, who own the
// financial dashboard.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, superAdminOnly func(http.Handler) http.Handler,
) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(superAdminOnly)

		r.Get("/financial", h.Download)
	})
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	active, completed := h.store.ListBores()
	bores := append(active, completed...)

	now := h.now()
	csv := Generate(bores, h.store.ListExpenses(), now)

	metrics.ReportsGenerated.Inc()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		`attachment; filename="`+Filename(now)+`"`,
	)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // best-effort response write
	_, _ = w.Write([]byte(csv))
}
