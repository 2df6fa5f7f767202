// Package writequeue serializes mutations of the persisted settings
// document. Every history append, history clear, and settings save goes
// through a single worker, so two uploads completing at the same moment
// cannot race on the document's read-modify-write cycle.
package writequeue

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrWriteQueueFull returned when the queue is full
	ErrWriteQueueFull = errors.New("write queue is full")
	// ErrWriteQueueClosed returned when the queue is closed
	ErrWriteQueueClosed = errors.New("write queue is closed")
	// ErrWriteTimeout returned when a write operation times out
	ErrWriteTimeout = errors.New("write operation timeout")
)

// Config write queue configuration
type Config struct {
	// Capacity queue capacity, default 100
	Capacity int
	// WriteTimeout per-operation timeout, default 30 seconds
	WriteTimeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Capacity:     100,
		WriteTimeout: 30 * time.Second,
	}
}

type writeOp struct {
	ctx    context.Context
	fn     func() error
	result chan error
}

// Queue executes write operations serially in FIFO order
type Queue struct {
	config Config
	logger *zap.Logger

	ch chan writeOp

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	closed   bool
	workerWg sync.WaitGroup
}

// New creates the write queue and starts its single worker. A nil cfg
// uses the defaults, a nil logger uses a nop logger.
func New(cfg *Config, logger *zap.Logger) *Queue {
	if cfg == nil {
		defaultCfg := DefaultConfig()
		cfg = &defaultCfg
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = 100
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &Queue{
		config: *cfg,
		logger: logger,
		ch:     make(chan writeOp, cfg.Capacity),
		ctx:    ctx,
		cancel: cancel,
	}

	q.workerWg.Add(1)
	go q.worker()

	q.logger.Info("write queue started",
		zap.Int("capacity", cfg.Capacity),
		zap.Duration("writeTimeout", cfg.WriteTimeout))

	return q
}

// Execute submits a write operation and waits for its result. Operations
// are executed strictly in submission order.
func (q *Queue) Execute(ctx context.Context, fn func() error) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrWriteQueueClosed
	}
	q.mu.RUnlock()

	result := make(chan error, 1)
	op := writeOp{ctx: ctx, fn: fn, result: result}

	select {
	case q.ch <- op:
	default:
		return ErrWriteQueueFull
	}

	timeout := q.config.WriteTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(timeout):
		return ErrWriteTimeout
	case <-q.ctx.Done():
		return ErrWriteQueueClosed
	}
}

func (q *Queue) worker() {
	defer q.workerWg.Done()

	for {
		select {
		case <-q.ctx.Done():
			q.drain()
			return
		case op, ok := <-q.ch:
			if !ok {
				return
			}
			q.executeOp(op)
		}
	}
}

func (q *Queue) executeOp(op writeOp) {
	select {
	case <-op.ctx.Done():
		op.result <- op.ctx.Err()
		return
	default:
	}

	err := op.fn()

	select {
	case op.result <- err:
	default:
	}
}

func (q *Queue) drain() {
	for {
		select {
		case op, ok := <-q.ch:
			if !ok {
				return
			}
			q.executeOp(op)
		default:
			return
		}
	}
}

// QueuedCount returns the number of operations waiting in the queue
func (q *Queue) QueuedCount() int {
	return len(q.ch)
}

// Shutdown closes the queue and waits for pending operations, bounded
// by ctx.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	q.logger.Info("write queue shutting down", zap.Int("queued", len(q.ch)))

	done := make(chan struct{})
	go func() {
		q.cancel()
		q.workerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
