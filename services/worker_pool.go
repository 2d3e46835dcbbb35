// Package services provides business logic implementations.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/NomadCrew/feedback-service/config"
	"github.com/NomadCrew/feedback-service/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const defaultJobTimeout = 10 * time.Second

// Job represents a unit of work for the worker pool.
type Job struct {
	// Name is a descriptive name for logging purposes
	Name string
	// Execute is the function that performs the work
	Execute func(ctx context.Context) error
}

// JobSubmitter accepts background jobs. Submit never blocks; it reports false
// when the job was dropped.
type JobSubmitter interface {
	Submit(job Job) bool
}

// WorkerPool runs jobs on a fixed number of goroutines fed by a bounded queue.
// Feedback events are published through it so a slow Redis never delays the
// HTTP response.
type WorkerPool struct {
	jobQueue   chan Job
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	logger     *zap.SugaredLogger
	metrics    *workerPoolMetrics
	config     config.WorkerPoolConfig
	jobTimeout time.Duration
	mu         sync.RWMutex
	running    bool
	stopped    bool
}

// Ensure WorkerPool implements JobSubmitter
var _ JobSubmitter = (*WorkerPool)(nil)

type workerPoolMetrics struct {
	queueDepth    prometheus.Gauge
	activeWorkers prometheus.Gauge
	completedJobs prometheus.Counter
	droppedJobs   prometheus.Counter
	errorCount    prometheus.Counter
	jobDuration   prometheus.Histogram
}

// Singleton pattern for metrics (avoid double registration in tests).
var (
	wpMetricsInstance *workerPoolMetrics
	wpMetricsOnce     sync.Once
	wpDefaultRegistry = prometheus.DefaultRegisterer
)

func newWorkerPoolMetrics() *workerPoolMetrics {
	wpMetricsOnce.Do(func() {
		wpMetricsInstance = &workerPoolMetrics{
			queueDepth: promauto.With(wpDefaultRegistry).NewGauge(prometheus.GaugeOpts{
				Name: "feedback_worker_pool_queue_depth",
				Help: "Current number of jobs waiting in queue",
			}),
			activeWorkers: promauto.With(wpDefaultRegistry).NewGauge(prometheus.GaugeOpts{
				Name: "feedback_worker_pool_active_workers",
				Help: "Current number of workers processing jobs",
			}),
			completedJobs: promauto.With(wpDefaultRegistry).NewCounter(prometheus.CounterOpts{
				Name: "feedback_worker_pool_completed_jobs_total",
				Help: "Total number of executed jobs",
			}),
			droppedJobs: promauto.With(wpDefaultRegistry).NewCounter(prometheus.CounterOpts{
				Name: "feedback_worker_pool_dropped_jobs_total",
				Help: "Total number of jobs dropped because the queue was full or the pool stopped",
			}),
			errorCount: promauto.With(wpDefaultRegistry).NewCounter(prometheus.CounterOpts{
				Name: "feedback_worker_pool_errors_total",
				Help: "Total number of job execution errors",
			}),
			jobDuration: promauto.With(wpDefaultRegistry).NewHistogram(prometheus.HistogramOpts{
				Name:    "feedback_worker_pool_job_duration_seconds",
				Help:    "Time taken to execute jobs",
				Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5},
			}),
		}
	})
	return wpMetricsInstance
}

// resetWorkerPoolMetricsForTesting resets the metrics singleton for test isolation.
func resetWorkerPoolMetricsForTesting() {
	wpDefaultRegistry = prometheus.NewRegistry()
	wpMetricsInstance = nil
	wpMetricsOnce = sync.Once{}
}

// NewWorkerPool creates a new worker pool with the given configuration.
// The pool must be started with Start() before submitting jobs.
func NewWorkerPool(cfg config.WorkerPoolConfig) *WorkerPool {
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		jobQueue:   make(chan Job, cfg.QueueSize),
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger.GetLogger().Named("worker-pool"),
		metrics:    newWorkerPoolMetrics(),
		config:     cfg,
		jobTimeout: defaultJobTimeout,
	}
}

// Start launches the worker goroutines. Calling Start() multiple times is safe
// and will only start workers once.
func (wp *WorkerPool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.running || wp.stopped {
		wp.logger.Warn("Worker pool already started")
		return
	}
	wp.running = true

	wp.logger.Infow("Starting worker pool",
		"maxWorkers", wp.config.MaxWorkers,
		"queueSize", wp.config.QueueSize)

	for i := 0; i < wp.config.MaxWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()
	wp.logger.Debugw("Worker started", "workerId", id)

	// The queue is drained before exiting; ctx is only cancelled when
	// shutdown runs out of time.
	for job := range wp.jobQueue {
		wp.executeJob(id, job)
	}
	wp.logger.Debugw("Worker stopping (channel closed)", "workerId", id)
}

func (wp *WorkerPool) executeJob(workerID int, job Job) {
	wp.metrics.activeWorkers.Inc()
	wp.metrics.queueDepth.Dec()
	defer wp.metrics.activeWorkers.Dec()

	start := time.Now()

	jobCtx, cancel := context.WithTimeout(wp.ctx, wp.jobTimeout)
	defer cancel()

	if err := job.Execute(jobCtx); err != nil {
		wp.logger.Warnw("Job execution failed",
			"job", job.Name,
			"workerId", workerID,
			"error", err,
			"duration", time.Since(start))
		wp.metrics.errorCount.Inc()
	} else {
		wp.logger.Debugw("Job completed",
			"job", job.Name,
			"workerId", workerID,
			"duration", time.Since(start))
	}

	wp.metrics.jobDuration.Observe(time.Since(start).Seconds())
	wp.metrics.completedJobs.Inc()
}

// Submit adds a job to the queue. Returns true if the job was queued,
// false if the queue is full or the pool has been shut down.
// This method is non-blocking and safe to call from multiple goroutines.
func (wp *WorkerPool) Submit(job Job) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.stopped {
		wp.metrics.droppedJobs.Inc()
		wp.logger.Warnw("Job dropped - pool stopped", "job", job.Name)
		return false
	}

	select {
	case wp.jobQueue <- job:
		wp.metrics.queueDepth.Inc()
		wp.logger.Debugw("Job submitted", "job", job.Name)
		return true
	default:
		wp.metrics.droppedJobs.Inc()
		wp.logger.Warnw("Job dropped - queue full",
			"job", job.Name,
			"queueSize", wp.config.QueueSize)
		return false
	}
}

// Shutdown stops accepting jobs and waits for queued and in-flight jobs to
// finish. When ctx expires first, running jobs are cancelled and ctx.Err()
// is returned.
func (wp *WorkerPool) Shutdown(ctx context.Context) error {
	wp.mu.Lock()
	if wp.stopped {
		wp.mu.Unlock()
		return nil
	}
	wp.stopped = true
	wasRunning := wp.running
	wp.running = false
	close(wp.jobQueue)
	wp.mu.Unlock()

	if !wasRunning {
		wp.cancel()
		return nil
	}

	wp.logger.Info("Initiating worker pool shutdown...")

	done := make(chan struct{})
	go func() {
		wp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		wp.cancel()
		wp.logger.Info("Worker pool shutdown complete - all workers finished")
		return nil
	case <-ctx.Done():
		wp.cancel()
		wp.logger.Warn("Worker pool shutdown timed out - some jobs were cancelled")
		return ctx.Err()
	}
}

// QueueDepth returns the current number of jobs waiting in the queue.
func (wp *WorkerPool) QueueDepth() int {
	return len(wp.jobQueue)
}

// QueueCapacity returns the size of the job queue.
func (wp *WorkerPool) QueueCapacity() int {
	return cap(wp.jobQueue)
}

// IsRunning returns whether the worker pool is currently running.
func (wp *WorkerPool) IsRunning() bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.running
}
