package events

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/NomadCrew/feedback-service/logger"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}

func testEvent() types.FeedbackEvent {
	username := "Alice"
	created := time.Date(2025, 11, 22, 10, 30, 0, 0, time.UTC)
	return types.FeedbackEvent{
		EventID:     "evt-1",
		Type:        types.EventTypeFeedbackCreated,
		FeedbackID:  1,
		Username:    &username,
		CreatedAt:   created,
		PublishedAt: created.Add(time.Millisecond),
	}
}

func TestRedisPublisher_Publish(t *testing.T) {
	resetMetricsForTesting()
	rdb, mock := redismock.NewClientMock()
	publisher := NewRedisPublisher(rdb, Config{Channel: "feedback:test", PublishTimeout: time.Second})

	event := testEvent()
	data, err := json.Marshal(event)
	require.NoError(t, err)

	mock.ExpectPublish("feedback:test", data).SetVal(1)

	err = publisher.Publish(context.Background(), event)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1.0, testutil.ToFloat64(publisher.metrics.eventCount.WithLabelValues(string(types.EventTypeFeedbackCreated))))
}

func TestRedisPublisher_PublishRedisError(t *testing.T) {
	resetMetricsForTesting()
	rdb, mock := redismock.NewClientMock()
	publisher := NewRedisPublisher(rdb)

	event := testEvent()
	data, err := json.Marshal(event)
	require.NoError(t, err)

	mock.ExpectPublish(DefaultConfig().Channel, data).SetErr(errors.New("connection reset"))

	err = publisher.Publish(context.Background(), event)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis publish")
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1.0, testutil.ToFloat64(publisher.metrics.errorCount.WithLabelValues("redis")))
}

func TestRedisPublisher_PublishInvalidEvent(t *testing.T) {
	resetMetricsForTesting()
	rdb, mock := redismock.NewClientMock()
	publisher := NewRedisPublisher(rdb)

	event := testEvent()
	event.FeedbackID = 0

	err := publisher.Publish(context.Background(), event)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid event")
	// nothing reaches redis
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1.0, testutil.ToFloat64(publisher.metrics.errorCount.WithLabelValues("validation")))
}

func TestRedisPublisher_MetricsRegistered(t *testing.T) {
	reg := resetMetricsForTesting()
	rdb, _ := redismock.NewClientMock()
	NewRedisPublisher(rdb)
	// creating a second publisher must not register the collectors twice
	NewRedisPublisher(rdb)

	families, err := reg.Gather()
	require.NoError(t, err)

	// vectors without observations are not gathered; the histogram always is
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "feedback_event_publish_duration_seconds")
}

func TestNoopPublisher(t *testing.T) {
	var publisher types.EventPublisher = NoopPublisher{}
	assert.NoError(t, publisher.Publish(context.Background(), testEvent()))
}
