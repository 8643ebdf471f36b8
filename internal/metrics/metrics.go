// Package metrics holds the Prometheus collectors of the inventory manager.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "inventory",
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Latency of database statements.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op", "status"},
	)

	cacheRebuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "cache",
			Name:      "rebuilds_total",
			Help:      "Warehouse name cache rebuilds.",
		},
		[]string{"status"},
	)

	cacheEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "inventory",
			Subsystem: "cache",
			Name:      "warehouses",
			Help:      "Warehouses in the current name cache snapshot.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inventory",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"method", "route", "code"},
	)

	registerOnce sync.Once
)

// Register adds every collector to reg. Only the first call has an effect.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(queryDuration, cacheRebuilds, cacheEntries, httpRequests)
	})
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func ObserveQuery(op string, elapsed time.Duration, err error) {
	queryDuration.WithLabelValues(op, status(err)).Observe(elapsed.Seconds())
}

func ObserveCacheRebuild(entries int, err error) {
	cacheRebuilds.WithLabelValues(status(err)).Inc()
	if err == nil {
		cacheEntries.Set(float64(entries))
	}
}

func ObserveRequest(method, route, code string) {
	httpRequests.WithLabelValues(method, route, code).Inc()
}
