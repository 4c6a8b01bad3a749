package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for form submissions and outbound mail
var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Total number of form submissions by form and outcome",
		},
		[]string{"form", "outcome"},
	)

	EmailSendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "form_email_send_duration_seconds",
			Help:    "Duration of outbound notification sends",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"form", "result"},
	)
)

var registerOnce sync.Once

// Register registers all Prometheus metrics with the default registry
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(SubmissionsTotal, EmailSendDuration)
	})
}

// ObserveSubmission counts one terminal outcome for a form.
func ObserveSubmission(form, outcome string) {
	SubmissionsTotal.WithLabelValues(form, outcome).Inc()
}

// ObserveSend records how long a send took and whether it succeeded.
func ObserveSend(form string, seconds float64, ok bool) {
	result := "sent"
	if !ok {
		result = "failed"
	}
	EmailSendDuration.WithLabelValues(form, result).Observe(seconds)
}
