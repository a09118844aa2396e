package middleware

import (
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "housekeeping_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	houseStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "housekeeping_house_status_changes_total",
			Help: "House status and check state changes by resulting value",
		},
		[]string{"field", "value"},
	)
	notesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "housekeeping_notes_created_total",
			Help: "Notes created by category",
		},
		[]string{"category"},
	)
	notesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "housekeeping_notes_deleted_total",
			Help: "Notes deleted, single or bulk",
		},
	)
)

// routeTemplate keeps the path label bounded by using the mux template.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// PrometheusMiddleware records request duration.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		httpRequestDuration.
			WithLabelValues(r.Method, routeTemplate(r), strconv.Itoa(m.Code)).
			Observe(m.Duration.Seconds())
	})
}

func RecordStatusChange(field, value string) {
	houseStatusChanges.WithLabelValues(field, value).Inc()
}

func RecordNoteCreated(category string) {
	notesCreated.WithLabelValues(category).Inc()
}

func RecordNotesDeleted(n int) {
	notesDeleted.Add(float64(n))
}
