// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/shreeram-borwells/srb-backend/internal/core"
	"github.com/shreeram-borwells/srb-backend/internal/metrics"
)

// LedgerStore is the slice of the ledger the maintenance routes need.
type LedgerStore interface {
	Counts() (bores, expenses int)
	ClearAll() (boresCleared, expensesCleared int)
}

type RosterStore interface {
	Count() int
}

type AuthService interface {
	RevokedCount() int
}

type Handler struct {
	redisStats func() *redis.PoolStats
	redisPing  func(ctx context.Context) error
	ledger     LedgerStore
	roster     RosterStore
	authSvc    AuthService
}

type HandlerConfig struct {
	RedisStats func() *redis.PoolStats
	RedisPing  func(ctx context.Context) error
	Ledger     LedgerStore
	Roster     RosterStore
	AuthSvc    AuthService
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		redisStats: cfg.RedisStats,
		redisPing:  cfg.RedisPing,
		ledger:     cfg.Ledger,
		roster:     cfg.Roster,
		authSvc:    cfg.AuthSvc,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, superAdminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(superAdminOnly)

		r.Get("/stats", h.GetSystemStats)
		r.Get("/stats/redis", h.GetRedisStats)
		r.Get("/stats/runtime", h.GetRuntimeStats)
		r.Post("/maintenance/clear", h.ClearLedger)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	redisHealthy := true
	if h.redisPing != nil {
		if err := h.redisPing(ctx); err != nil {
			redisHealthy = false
		}
	}

	bores, expenses := h.ledger.Counts()

	response := SystemStatsResponse{
		Stores: StoreStats{
			Bores:           bores,
			Expenses:        expenses,
			Users:           h.roster.Count(),
			RevokedSessions: h.authSvc.RevokedCount(),
		},
		Redis: RedisStatus{
			Healthy: redisHealthy,
			Stats:   h.getRedisStats(),
		},
		Runtime: runtimeStats(),
	}

	core.OK(w, response)
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.getRedisStats())
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, runtimeStats())
}

// ClearLedger wipes every bore and expense in one transition. There is no
// undo; the response reports what was dropped.
func (h *Handler) ClearLedger(w http.ResponseWriter, r *http.Request) {
	bores, expenses := h.ledger.ClearAll()

	metrics.LedgerMutations.WithLabelValues("cleared").Inc()

	core.OK(w, ClearResponse{
		BoresCleared:    bores,
		ExpensesCleared: expenses,
	})
}

func runtimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}

type SystemStatsResponse struct {
	Stores  StoreStats   `json:"stores"`
	Redis   RedisStatus  `json:"redis"`
	Runtime RuntimeStats `json:"runtime"`
}

type StoreStats struct {
	Bores           int `json:"bores"`
	Expenses        int `json:"expenses"`
	Users           int `json:"users"`
	RevokedSessions int `json:"revoked_sessions"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type ClearResponse struct {
	BoresCleared    int `json:"bores_cleared"`
	ExpensesCleared int `json:"expenses_cleared"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
