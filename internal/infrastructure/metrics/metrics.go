// Package metrics expone los contadores Prometheus de la aplicación.
// El endpoint /metrics se monta en el router cuando METRICS_ENABLED=true.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LedgerTransactions cuenta las transacciones registradas por tipo.
	LedgerTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reciclaje",
		Subsystem: "ledger",
		Name:      "transactions_total",
		Help:      "Transacciones del libro registradas, por tipo.",
	}, []string{"type"})

	// LedgerRejections cuenta los registros rechazados por stock insuficiente.
	LedgerRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reciclaje",
		Subsystem: "ledger",
		Name:      "insufficient_stock_total",
		Help:      "Operaciones rechazadas por stock insuficiente.",
	})

	// HTTPRequests cuenta las peticiones HTTP por método, ruta y código.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reciclaje",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Peticiones HTTP atendidas.",
	}, []string{"method", "path", "status"})

	// HTTPDuration histograma de latencia por ruta.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reciclaje",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)
