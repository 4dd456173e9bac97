// Package metrics defines all custom Prometheus metrics for the admin
// backend. It is the single source of truth for metric names, labels, and
// help strings. Metrics self-register with the default registry via promauto;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "admin"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (bad credentials), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks the number of sessions established minus sessions
// explicitly terminated. Expired sessions age out of the store without
// passing through this gauge.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Sessions established and not yet logged out.",
	},
)

// ProductsCreatedTotal counts catalog products created through the API.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// AnnouncementsPublishedTotal counts announcements published. Each publish
// supersedes the previous active announcement.
var AnnouncementsPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "announcements_published_total",
		Help:      "Total number of announcements published.",
	},
)
