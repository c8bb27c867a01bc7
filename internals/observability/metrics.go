package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AttendanceMarked dihitung per subject saat marking sukses.
	AttendanceMarked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kampusku_attendance_marked_total",
		Help: "Total attendance marking events recorded.",
	})

	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kampusku_cascade_deletes_total",
		Help: "Cascade delete operations by root entity.",
	}, []string{"root"})

	ReportCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kampusku_report_cache_total",
		Help: "Subject report cache lookups by outcome.",
	}, []string{"outcome"})
)
