// Package metrics defines and registers all custom Prometheus metrics for the
// governance portal API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ApplicationsSubmittedTotal counts applications filed by citizens.
// Label:
//   - scheme: the denormalized scheme name at submission time
var ApplicationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of scheme applications submitted.",
	},
	[]string{"scheme"},
)

// ApplicationsReviewedTotal counts review decisions by officials.
// Label:
//   - decision: "Verified" or "Rejected"
var ApplicationsReviewedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_reviewed_total",
		Help:      "Total number of review decisions, by outcome.",
	},
	[]string{"decision"},
)

// ApplicationsPurgedTotal counts applications removed by administrative purges.
var ApplicationsPurgedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_purged_total",
		Help:      "Total number of applications deleted by ledger purges.",
	},
)

// ChatRequestsTotal counts chat-completion proxy calls.
// Label:
//   - outcome: "ok" or "error"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of chat completion requests, by outcome.",
	},
	[]string{"outcome"},
)

// SchemeCacheTotal counts catalog cache lookups.
// Label:
//   - result: "hit" or "miss"
var SchemeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheme_cache_total",
		Help:      "Total number of scheme catalog cache lookups, by result.",
	},
	[]string{"result"},
)
