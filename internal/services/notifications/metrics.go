package notifications

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindDrawCompleted = "draw_completed"
	kindDrawCancelled = "draw_cancelled"

	resultSent    = "sent"
	resultFailed  = "failed"
	resultDropped = "dropped"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "secret_santa_notifications_total",
		Help: "Participant notifications by kind and delivery result",
	},
	[]string{"kind", "result"},
)
