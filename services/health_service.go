package services

import (
	"context"
	"fmt"
	"time"

	"github.com/NomadCrew/feedback-service/logger"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dbPingAttempts       = 3
	poolSaturationRatio  = 0.8
	queueSaturationRatio = 0.8
	defaultPingRetryWait = 100 * time.Millisecond
)

// DBPinger is the part of the connection pool the health checks need.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// PoolStatsGetter reports acquired and maximum connections of the pool.
type PoolStatsGetter func() (acquired, max int32)

// WorkerPoolStats is the view of the background job pool the health checks
// need. *WorkerPool satisfies it.
type WorkerPoolStats interface {
	QueueDepth() int
	QueueCapacity() int
	IsRunning() bool
}

type HealthService struct {
	db          DBPinger
	redisClient redis.UniversalClient
	version     string
	startTime   time.Time
	retryWait   time.Duration
	poolStats   PoolStatsGetter
	workerPool  WorkerPoolStats
	log         *zap.SugaredLogger
}

// NewHealthService creates the health checker. redisClient may be nil when
// event publishing is disabled; the redis component is then not reported.
func NewHealthService(db DBPinger, redisClient redis.UniversalClient, version string) *HealthService {
	return &HealthService{
		db:          db,
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
		retryWait:   defaultPingRetryWait,
		log:         logger.GetLogger().Named("health"),
	}
}

// SetPoolStatsGetter enables the pool saturation check.
func (h *HealthService) SetPoolStatsGetter(getter PoolStatsGetter) {
	h.poolStats = getter
}

// SetWorkerPool enables the "workerPool" component, which watches the queue
// that feedback events are published through.
func (h *HealthService) SetWorkerPool(pool WorkerPoolStats) {
	h.workerPool = pool
}

// CheckHealth reports every dependency. A database failure makes the service
// DOWN. Redis or worker pool trouble only DEGRADES it since feedback can still
// be stored.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)

	dbStatus := h.checkDatabase(ctx)
	components["database"] = dbStatus
	overall := dbStatus.Status

	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		if redisStatus.Status != types.HealthStatusUp {
			overall = overall.Worse(types.HealthStatusDegraded)
		}
	}

	if h.workerPool != nil {
		poolStatus := h.checkWorkerPool()
		components["workerPool"] = poolStatus
		overall = overall.Worse(poolStatus.Status)
	}

	return h.report(overall, components)
}

// CheckReadiness reports whether requests can be served, which only needs
// the database.
func (h *HealthService) CheckReadiness(ctx context.Context) types.HealthCheck {
	dbStatus := h.checkDatabase(ctx)
	return h.report(dbStatus.Status, map[string]types.HealthComponent{"database": dbStatus})
}

// CheckLiveness reports that the process is up without touching dependencies.
func (h *HealthService) CheckLiveness() types.HealthCheck {
	return h.report(types.HealthStatusUp, map[string]types.HealthComponent{})
}

func (h *HealthService) report(status types.HealthStatus, components map[string]types.HealthComponent) types.HealthCheck {
	return types.HealthCheck{
		Status:     status,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	var err error
	for attempt := 1; attempt <= dbPingAttempts; attempt++ {
		if err = h.db.Ping(ctx); err == nil {
			break
		}
		h.log.Warnw("Database ping failed", "attempt", attempt, "error", err)
		if attempt < dbPingAttempts {
			select {
			case <-ctx.Done():
				attempt = dbPingAttempts
			case <-time.After(h.retryWait):
			}
		}
	}
	if err != nil {
		h.log.Errorw("Database health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Database connection failed",
		}
	}

	if h.poolStats != nil {
		acquired, max := h.poolStats()
		if max > 0 && float64(acquired)/float64(max) > poolSaturationRatio {
			return types.HealthComponent{
				Status:  types.HealthStatusDegraded,
				Details: "Connection pool near capacity",
			}
		}
	}

	return types.HealthComponent{Status: types.HealthStatusUp}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}

func (h *HealthService) checkWorkerPool() types.HealthComponent {
	depth, capacity := h.workerPool.QueueDepth(), h.workerPool.QueueCapacity()
	details := fmt.Sprintf("%d/%d jobs queued", depth, capacity)

	if !h.workerPool.IsRunning() {
		h.log.Warnw("Worker pool is not running", "queueDepth", depth)
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Worker pool is not running, " + details,
		}
	}
	if capacity > 0 && float64(depth)/float64(capacity) > queueSaturationRatio {
		h.log.Warnw("Worker pool queue near capacity", "queueDepth", depth, "queueCapacity", capacity)
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Job queue near capacity, " + details,
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp, Details: details}
}
