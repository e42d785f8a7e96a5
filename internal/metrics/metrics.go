package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innata_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "innata_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innata_reservations_total",
			Help: "Total number of reservation attempts",
		},
		[]string{"outcome"},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innata_cancellations_total",
			Help: "Total number of reservation cancellations",
		},
		[]string{"refunded"},
	)

	PenaltiesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innata_penalties_total",
			Help: "Total number of no-show penalty cascades",
		},
		[]string{"cascaded"},
	)

	WeekPurchasesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innata_week_purchases_total",
			Help: "Total number of unlimited week purchases",
		},
	)

	PaymentConfirmationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "innata_payment_confirmations_total",
			Help: "Total number of payment confirmations applied",
		},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "innata_notifications_sent_total",
			Help: "Total number of notifications sent",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "innata_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordReservation(outcome string) {
	ReservationsTotal.WithLabelValues(outcome).Inc()
}

func RecordCancellation(refunded bool) {
	if refunded {
		CancellationsTotal.WithLabelValues("yes").Inc()
	} else {
		CancellationsTotal.WithLabelValues("no").Inc()
	}
}

func RecordPenalty(cascaded bool) {
	if cascaded {
		PenaltiesTotal.WithLabelValues("yes").Inc()
	} else {
		PenaltiesTotal.WithLabelValues("no").Inc()
	}
}

func RecordWeekPurchase() {
	WeekPurchasesTotal.Inc()
}

func RecordPaymentConfirmation() {
	PaymentConfirmationsTotal.Inc()
}

func RecordNotification(notifType, status string) {
	NotificationsSentTotal.WithLabelValues(notifType, status).Inc()
}

func SetNotificationQueueLength(n float64) {
	NotificationQueueLength.Set(n)
}
