package bootstrap

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"

	workerin "ticketassign/adapter/in/worker"
	"ticketassign/adapter/out/messaging"
	"ticketassign/config"
	"ticketassign/pkg/logger"
)

// Worker runs the Redis Stream consumer feeding the bounded assignment pool.
type Worker struct {
	pool     *workerin.Pool
	consumer *messaging.Consumer
	deps     *Dependencies
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	zlog     zerolog.Logger
}

// NewWorker constructs the worker pool, its handler and the stream consumer
// that dispatches onto it.
func NewWorker(cfg *config.Config) (*Worker, func(), error) {
	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		return nil, nil, err
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Str("component", "worker").Logger()

	handler := workerin.NewHandler(deps.AssignmentEngine, deps.SimilarityFinder, deps.DecisionRepository, deps.Notifier, zlog)

	poolConfig := workerin.DefaultPoolConfig()
	if cfg.WorkerMin > 0 {
		poolConfig.MinWorkers = cfg.WorkerMin
	}
	if cfg.WorkerMax > 0 {
		poolConfig.MaxWorkers = cfg.WorkerMax
	}
	if cfg.WorkerQueueSize > 0 {
		poolConfig.QueueSize = cfg.WorkerQueueSize
	}
	if cfg.WorkerScaleInterval > 0 {
		poolConfig.ScaleInterval = cfg.WorkerScaleInterval
	}
	if cfg.WorkerIdleTimeout > 0 {
		poolConfig.IdleTimeout = cfg.WorkerIdleTimeout
	}

	pool := workerin.NewPool(handler, poolConfig, zlog)

	ctx, cancel := context.WithCancel(context.Background())

	w := &Worker{pool: pool, deps: deps, ctx: ctx, cancel: cancel, zlog: zlog}

	if deps.Redis != nil {
		dispatcher := workerin.NewStreamDispatcher(pool)
		w.consumer = messaging.NewConsumer(deps.Redis, &messaging.ConsumerConfig{
			Group:      cfg.ConsumerGroup,
			Consumer:   cfg.WorkerID,
			Streams:    []string{messaging.StreamTicketsCreated},
			Handler:    dispatcher,
			Logger:     zlog,
			MaxRetries: cfg.ConsumerMaxRetries,
		})
		logger.Info("Redis Stream Consumer configured for ticket ingestion")
	} else {
		logger.Warn("Redis not available, worker will only process direct submissions")
	}

	return w, func() {
		cleanup()
	}, nil
}

// Start begins the worker pool and, if configured, the stream consumer.
// Blocks until Stop is called.
func (w *Worker) Start() {
	w.pool.Start()

	if w.consumer != nil {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			if err := w.consumer.Run(w.ctx); err != nil && w.ctx.Err() == nil {
				w.zlog.Error().Err(err).Msg("stream consumer stopped unexpectedly")
			}
		}()
	}

	<-w.ctx.Done()
}

// Stop shuts down the consumer and drains the pool.
func (w *Worker) Stop() {
	w.cancel()
	w.wg.Wait()
	w.pool.Stop()
}
