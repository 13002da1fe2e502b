package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Booking and order metrics
	BookingsCreated prometheus.Counter
	OrdersCreated   prometheus.Counter
	StaffReassigned *prometheus.CounterVec

	// Reconciliation metrics
	BreakdownSaves     *prometheus.CounterVec
	BreakdownDifference prometheus.Histogram
	ValidationChecks   prometheus.Counter

	// Report metrics
	ReportsAssembled prometheus.Counter
	ReportDuration   prometheus.Histogram
	ExportCacheHits  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studioops_bookings_created_total",
			Help: "Total number of bookings created",
		}),
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studioops_orders_created_total",
			Help: "Total number of product orders created",
		}),
		StaffReassigned: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studioops_staff_reassignments_total",
				Help: "Total staff reassignments by entity type",
			},
			[]string{"entity"},
		),

		BreakdownSaves: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studioops_breakdown_saves_total",
				Help: "Total breakdown save attempts by outcome",
			},
			[]string{"entity", "outcome"},
		),
		BreakdownDifference: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "studioops_breakdown_difference",
			Help:    "Absolute difference of rejected unbalanced breakdowns",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		ValidationChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studioops_validation_checks_total",
			Help: "Total interactive balance validations",
		}),

		ReportsAssembled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "studioops_reports_assembled_total",
			Help: "Total monthly reports assembled",
		}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "studioops_report_duration_seconds",
			Help:    "Duration of report assembly",
			Buckets: prometheus.DefBuckets,
		}),
		ExportCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studioops_export_cache_total",
				Help: "Workbook export cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// Save outcomes.
const (
	OutcomeBalanced   = "balanced"
	OutcomeUnbalanced = "unbalanced"
	OutcomeError      = "error"
)
