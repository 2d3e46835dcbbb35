package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/NomadCrew/feedback-service/logger"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds configuration for RedisPublisher
type Config struct {
	Channel        string
	PublishTimeout time.Duration
}

// DefaultConfig returns default configuration values
func DefaultConfig() Config {
	return Config{
		Channel:        "feedback:events",
		PublishTimeout: 2 * time.Second,
	}
}

type metrics struct {
	publishLatency prometheus.Histogram
	errorCount     *prometheus.CounterVec
	eventCount     *prometheus.CounterVec
}

var (
	metricsInstance *metrics
	metricsOnce     sync.Once
	defaultRegistry = prometheus.DefaultRegisterer
)

func newMetrics() *metrics {
	metricsOnce.Do(func() {
		metricsInstance = &metrics{
			publishLatency: promauto.With(defaultRegistry).NewHistogram(prometheus.HistogramOpts{
				Name:    "feedback_event_publish_duration_seconds",
				Help:    "Time taken to publish feedback events",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			}),
			errorCount: promauto.With(defaultRegistry).NewCounterVec(prometheus.CounterOpts{
				Name: "feedback_event_publish_errors_total",
				Help: "Total number of feedback events that could not be published",
			}, []string{"reason"}),
			eventCount: promauto.With(defaultRegistry).NewCounterVec(prometheus.CounterOpts{
				Name: "feedback_events_published_total",
				Help: "Total number of feedback events published by type",
			}, []string{"type"}),
		}
	})
	return metricsInstance
}

// resetMetricsForTesting points the metrics at a fresh registry.
func resetMetricsForTesting() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	defaultRegistry = reg
	metricsInstance = nil
	metricsOnce = sync.Once{}
	return reg
}

// RedisPublisher implements types.EventPublisher using Redis Pub/Sub. Every
// event goes to a single channel as a JSON document.
type RedisPublisher struct {
	rdb     redis.UniversalClient
	log     *zap.SugaredLogger
	metrics *metrics
	config  Config
}

// Ensure RedisPublisher implements types.EventPublisher
var _ types.EventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisher creates a new RedisPublisher instance
func NewRedisPublisher(rdb redis.UniversalClient, cfg ...Config) *RedisPublisher {
	config := DefaultConfig()
	if len(cfg) > 0 {
		config = cfg[0]
	}
	if config.PublishTimeout <= 0 {
		config.PublishTimeout = DefaultConfig().PublishTimeout
	}

	return &RedisPublisher{
		rdb:     rdb,
		log:     logger.GetLogger().Named("events"),
		metrics: newMetrics(),
		config:  config,
	}
}

// Publish sends event to the configured channel. Delivery is at most once:
// Redis drops the message when nobody is subscribed.
func (p *RedisPublisher) Publish(ctx context.Context, event types.FeedbackEvent) error {
	start := time.Now()
	defer func() {
		p.metrics.publishLatency.Observe(time.Since(start).Seconds())
	}()

	if err := event.Validate(); err != nil {
		p.metrics.errorCount.WithLabelValues("validation").Inc()
		return fmt.Errorf("invalid event: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.metrics.errorCount.WithLabelValues("marshal").Inc()
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.PublishTimeout)
	defer cancel()

	receivers, err := p.rdb.Publish(ctx, p.config.Channel, data).Result()
	if err != nil {
		p.metrics.errorCount.WithLabelValues("redis").Inc()
		return fmt.Errorf("redis publish: %w", err)
	}

	p.metrics.eventCount.WithLabelValues(string(event.Type)).Inc()
	p.log.Debugw("Published feedback event",
		"channel", p.config.Channel,
		"type", event.Type,
		"feedbackId", event.FeedbackID,
		"receivers", receivers)
	return nil
}
