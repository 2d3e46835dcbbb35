package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedbackCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedback_created_total",
		Help: "Total number of feedback entries stored",
	})

	feedbackListedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_list_requests_total",
		Help: "Total number of feedback list requests by filter",
	}, []string{"filter"})
)
