package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NomadCrew/feedback-service/config"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/go-redis/redismock/v9"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHealthService(t *testing.T, withRedis bool) (*HealthService, pgxmock.PgxPoolIface, redismock.ClientMock) {
	t.Helper()
	dbMock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(dbMock.Close)

	var rdb redis.UniversalClient
	var redisMock redismock.ClientMock
	if withRedis {
		client, m := redismock.NewClientMock()
		rdb, redisMock = client, m
	}

	service := NewHealthService(dbMock, rdb, "1.0.0")
	service.retryWait = 0
	return service, dbMock, redisMock
}

func TestNewHealthService(t *testing.T) {
	service, _, _ := newTestHealthService(t, false)

	assert.Equal(t, "1.0.0", service.version)
	assert.NotNil(t, service.log)
	assert.Nil(t, service.redisClient)
	assert.True(t, time.Since(service.startTime) < time.Second)
}

func TestHealthService_CheckHealth(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(pgxmock.PgxPoolIface, redismock.ClientMock)
		expectedStatus types.HealthStatus
		dbStatus       types.HealthStatus
		redisStatus    types.HealthStatus
	}{
		{
			name: "all healthy",
			setupMocks: func(db pgxmock.PgxPoolIface, r redismock.ClientMock) {
				db.ExpectPing()
				r.ExpectPing().SetVal("PONG")
			},
			expectedStatus: types.HealthStatusUp,
			dbStatus:       types.HealthStatusUp,
			redisStatus:    types.HealthStatusUp,
		},
		{
			name: "database down",
			setupMocks: func(db pgxmock.PgxPoolIface, r redismock.ClientMock) {
				for i := 0; i < dbPingAttempts; i++ {
					db.ExpectPing().WillReturnError(errors.New("connection refused"))
				}
				r.ExpectPing().SetVal("PONG")
			},
			expectedStatus: types.HealthStatusDown,
			dbStatus:       types.HealthStatusDown,
			redisStatus:    types.HealthStatusUp,
		},
		{
			name: "redis down only degrades",
			setupMocks: func(db pgxmock.PgxPoolIface, r redismock.ClientMock) {
				db.ExpectPing()
				r.ExpectPing().SetErr(errors.New("redis connection failed"))
			},
			expectedStatus: types.HealthStatusDegraded,
			dbStatus:       types.HealthStatusUp,
			redisStatus:    types.HealthStatusDown,
		},
		{
			name: "both down",
			setupMocks: func(db pgxmock.PgxPoolIface, r redismock.ClientMock) {
				for i := 0; i < dbPingAttempts; i++ {
					db.ExpectPing().WillReturnError(errors.New("db error"))
				}
				r.ExpectPing().SetErr(errors.New("redis error"))
			},
			expectedStatus: types.HealthStatusDown,
			dbStatus:       types.HealthStatusDown,
			redisStatus:    types.HealthStatusDown,
		},
		{
			name: "database recovers on retry",
			setupMocks: func(db pgxmock.PgxPoolIface, r redismock.ClientMock) {
				db.ExpectPing().WillReturnError(errors.New("temporary error"))
				db.ExpectPing()
				r.ExpectPing().SetVal("PONG")
			},
			expectedStatus: types.HealthStatusUp,
			dbStatus:       types.HealthStatusUp,
			redisStatus:    types.HealthStatusUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, dbMock, redisMock := newTestHealthService(t, true)
			tt.setupMocks(dbMock, redisMock)
			service.startTime = time.Now().Add(-10 * time.Minute)

			result := service.CheckHealth(context.Background())

			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.dbStatus, result.Components["database"].Status)
			assert.Equal(t, tt.redisStatus, result.Components["redis"].Status)
			assert.Equal(t, "1.0.0", result.Version)
			assert.Equal(t, "10m0s", result.Uptime)
			assert.NotEmpty(t, result.Timestamp)

			assert.NoError(t, dbMock.ExpectationsWereMet())
			assert.NoError(t, redisMock.ExpectationsWereMet())
		})
	}
}

func TestHealthService_CheckHealth_RedisDisabled(t *testing.T) {
	service, dbMock, _ := newTestHealthService(t, false)
	dbMock.ExpectPing()

	result := service.CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusUp, result.Status)
	_, reported := result.Components["redis"]
	assert.False(t, reported)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHealthService_PoolSaturation(t *testing.T) {
	tests := []struct {
		name     string
		acquired int32
		max      int32
		expected types.HealthStatus
	}{
		{"idle pool", 1, 10, types.HealthStatusUp},
		{"at threshold", 8, 10, types.HealthStatusUp},
		{"near capacity", 9, 10, types.HealthStatusDegraded},
		{"unknown capacity", 5, 0, types.HealthStatusUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, dbMock, _ := newTestHealthService(t, false)
			dbMock.ExpectPing()
			service.SetPoolStatsGetter(func() (int32, int32) { return tt.acquired, tt.max })

			result := service.CheckHealth(context.Background())

			assert.Equal(t, tt.expected, result.Status)
			assert.Equal(t, tt.expected, result.Components["database"].Status)
		})
	}
}

type stubPoolStats struct {
	depth, capacity int
	running         bool
}

func (s stubPoolStats) QueueDepth() int    { return s.depth }
func (s stubPoolStats) QueueCapacity() int { return s.capacity }
func (s stubPoolStats) IsRunning() bool    { return s.running }

func TestHealthService_WorkerPool(t *testing.T) {
	tests := []struct {
		name        string
		stats       stubPoolStats
		expected    types.HealthStatus
		wantDetails string
	}{
		{"idle pool", stubPoolStats{0, 100, true}, types.HealthStatusUp, "0/100 jobs queued"},
		{"at threshold", stubPoolStats{80, 100, true}, types.HealthStatusUp, "80/100 jobs queued"},
		{"queue near capacity", stubPoolStats{95, 100, true}, types.HealthStatusDegraded, "Job queue near capacity, 95/100 jobs queued"},
		{"pool stopped", stubPoolStats{3, 100, false}, types.HealthStatusDegraded, "Worker pool is not running, 3/100 jobs queued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, dbMock, _ := newTestHealthService(t, false)
			dbMock.ExpectPing()
			service.SetWorkerPool(tt.stats)

			result := service.CheckHealth(context.Background())

			assert.Equal(t, tt.expected, result.Status)
			assert.Equal(t, tt.expected, result.Components["workerPool"].Status)
			assert.Equal(t, tt.wantDetails, result.Components["workerPool"].Details)
			assert.Equal(t, types.HealthStatusUp, result.Components["database"].Status)
		})
	}
}

func TestHealthService_WorkerPool_DatabaseDownWins(t *testing.T) {
	service, dbMock, _ := newTestHealthService(t, false)
	for i := 0; i < dbPingAttempts; i++ {
		dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}
	service.SetWorkerPool(stubPoolStats{depth: 99, capacity: 100, running: true})

	result := service.CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusDown, result.Status)
	assert.Equal(t, types.HealthStatusDegraded, result.Components["workerPool"].Status)
}

func TestHealthService_WorkerPool_Lifecycle(t *testing.T) {
	pool := NewWorkerPool(config.WorkerPoolConfig{MaxWorkers: 1, QueueSize: 10})
	service, dbMock, _ := newTestHealthService(t, false)
	service.SetWorkerPool(pool)

	dbMock.ExpectPing()
	assert.Equal(t, types.HealthStatusDegraded, service.CheckHealth(context.Background()).Status,
		"a pool that was never started cannot publish events")

	pool.Start()
	dbMock.ExpectPing()
	result := service.CheckHealth(context.Background())
	assert.Equal(t, types.HealthStatusUp, result.Status)
	assert.Equal(t, "0/10 jobs queued", result.Components["workerPool"].Details)

	require.NoError(t, pool.Shutdown(context.Background()))
	dbMock.ExpectPing()
	assert.Equal(t, types.HealthStatusDegraded, service.CheckHealth(context.Background()).Components["workerPool"].Status)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHealthService_CheckReadiness_IgnoresWorkerPool(t *testing.T) {
	service, dbMock, _ := newTestHealthService(t, false)
	dbMock.ExpectPing()
	service.SetWorkerPool(stubPoolStats{running: false, capacity: 10})

	result := service.CheckReadiness(context.Background())

	assert.Equal(t, types.HealthStatusUp, result.Status)
	assert.NotContains(t, result.Components, "workerPool")
}

func TestHealthService_CheckReadiness(t *testing.T) {
	service, dbMock, redisMock := newTestHealthService(t, true)
	dbMock.ExpectPing()

	result := service.CheckReadiness(context.Background())

	assert.Equal(t, types.HealthStatusUp, result.Status)
	assert.Len(t, result.Components, 1)
	assert.Contains(t, result.Components, "database")
	// readiness never touches redis
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHealthService_CheckReadiness_DatabaseDown(t *testing.T) {
	service, dbMock, _ := newTestHealthService(t, false)
	for i := 0; i < dbPingAttempts; i++ {
		dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	result := service.CheckReadiness(context.Background())

	assert.Equal(t, types.HealthStatusDown, result.Status)
	assert.Equal(t, "Database connection failed", result.Components["database"].Details)
}

func TestHealthService_CheckLiveness(t *testing.T) {
	service, dbMock, _ := newTestHealthService(t, false)

	result := service.CheckLiveness()

	assert.Equal(t, types.HealthStatusUp, result.Status)
	assert.Empty(t, result.Components)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
