// AngelaMos | 2026
// metrics.go

// Package metrics registers the service's Prometheus collectors and serves
// the scrape endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "srb_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	GeneratorAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "srb_generator_attempts_total",
		Help: "Individual upstream generation attempts, retries included.",
	})

	GeneratorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "srb_generator_requests_total",
		Help: "Generation requests by final result.",
	}, []string{"result"})

	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "srb_reports_generated_total",
		Help: "CSV financial reports produced.",
	})

	LedgerMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "srb_ledger_mutations_total",
		Help: "Ledger writes by kind.",
	}, []string{"kind"})
)

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
