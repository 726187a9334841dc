// Package metrics defines all custom Prometheus metrics for the Sweet Shop
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful self-service registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// SweetsCreatedTotal counts sweets added to the catalog.
// Label:
//   - category: the sweet's category (e.g. "Chocolate")
var SweetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweets_created_total",
		Help:      "Total number of sweets created, by category.",
	},
	[]string{"category"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// PurchasesTotal counts completed purchase operations.
var PurchasesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of completed purchases.",
	},
)

// UnitsSoldTotal counts individual units sold across all purchases.
var UnitsSoldTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "units_sold_total",
		Help:      "Total number of units sold.",
	},
)

// RestocksTotal counts completed restock operations.
var RestocksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of completed restocks.",
	},
)

// InsufficientStockTotal counts purchases rejected for lack of stock.
var InsufficientStockTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insufficient_stock_total",
		Help:      "Total number of purchases rejected due to insufficient stock.",
	},
)
