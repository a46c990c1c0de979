// AngelaMos | 2026
// handler_test.go

package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreeram-borwells/srb-backend/internal/middleware"
)

// stubAuth injects a fixed session without real token verification.
func stubAuth(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserIDKey, "test-user")
			ctx = context.WithValue(ctx, middleware.UserNameKey, name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func passthrough(next http.Handler) http.Handler { return next }

func testRouter(t *testing.T, store *Store) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(store).RegisterRoutes(
		r,
		stubAuth("Ramesh Kumar"),
		passthrough,
		passthrough,
	)
	return r
}

func TestAddBoreHandler(t *testing.T) {
	store := NewStore()
	router := testRouter(t, store)

	body := `{"name":"New Site","size":"6.5 inch","depth":"400",` +
		`"date":"2024-03-01","totalCost":"100000","costGiven":"40000"}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost, "/ledger/bores/", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    Bore `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, StatusPlanning, resp.Data.Status)
	assert.Equal(t, "₹ 1,00,000", resp.Data.TotalCost)
	// Auditor comes from the session, not the request body.
	assert.Equal(t, "Ramesh Kumar", resp.Data.AuditorName)
}

func TestAddBoreHandlerValidation(t *testing.T) {
	router := testRouter(t, NewStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost, "/ledger/bores/", strings.NewReader(`{"name":"X"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordPaymentHandler(t *testing.T) {
	store := seededStore(t)
	router := testRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/ledger/bores/2/payments",
		strings.NewReader(`{"amount":20000}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data Bore `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "₹ 50,000", resp.Data.CostGiven)
}

func TestRecordPaymentHandlerMissingBore(t *testing.T) {
	router := testRouter(t, NewStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/ledger/bores/999/payments",
		strings.NewReader(`{"amount":100}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummaryHandler(t *testing.T) {
	store := seededStore(t)
	router := testRouter(t, store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ledger/summary", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data Totals `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(75000), resp.Data.TotalRevenue)
	assert.Equal(t, float64(63000), resp.Data.NetPosition)
}
