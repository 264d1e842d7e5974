// Package metrics defines all custom Prometheus metrics for the pharmacy
// inventory API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pharmacy"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SalesTotal counts completed sales.
// Label:
//   - role: the role of the seller ("admin" or "cashier")
var SalesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_total",
		Help:      "Total number of completed sales, by seller role.",
	},
	[]string{"role"},
)

// SaleErrorsTotal counts rejected sales.
// Label:
//   - reason: "insufficient_stock", "invalid_quantity", or "not_found"
var SaleErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sale_errors_total",
		Help:      "Total number of rejected sale requests, by reason.",
	},
	[]string{"reason"},
)

// StockMutationsTotal counts admin mutations of the drug table.
// Label:
//   - action: "created", "updated", or "deleted"
var StockMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_mutations_total",
		Help:      "Total number of drug create/update/delete operations.",
	},
	[]string{"action"},
)
