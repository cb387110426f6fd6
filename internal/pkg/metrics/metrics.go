// Package metrics defines the custom Prometheus metrics for the study API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Call Register once at startup with the registry exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "study"

// ── User metrics ──────────────────────────────────────────────────────────────

// TagUpdatesTotal counts tag update attempts that reached the service.
// Label:
//   - result: "updated", "not_found", "invalid_input", "invalid_tag" or "error"
var TagUpdatesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_tag_updates_total",
		Help:      "Total number of user tag update attempts, by result.",
	},
	[]string{"result"},
)

// ── Server info metrics ───────────────────────────────────────────────────────

// ServerInfoCacheTotal counts server info cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var ServerInfoCacheTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "server_info_cache_total",
		Help:      "Total number of server info cache lookups, by result.",
	},
	[]string{"result"},
)

// Register adds every collector in this package to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{TagUpdatesTotal, ServerInfoCacheTotal} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
