package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"referral-guard/internal/observability"
)

var errPoolClosed = errors.New("worker pool is shutting down")

// WorkerPoolConfig holds configuration for the worker pool.
type WorkerPoolConfig struct {
	NumWorkers int

	// QueueSize bounds the number of events waiting for a worker
	QueueSize int

	// DrainTimeout bounds graceful shutdown
	DrainTimeout time.Duration
}

// DefaultWorkerPoolConfig returns sensible defaults for a worker pool.
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		NumWorkers:   8,
		QueueSize:    1000,
		DrainTimeout: 30 * time.Second,
	}
}

type pool struct {
	config    WorkerPoolConfig
	processor EventProcessor
	logger    *observability.Logger

	eventChan chan EventMessage
	wg        sync.WaitGroup

	// mu guards the lifecycle flags and closing eventChan
	mu       sync.RWMutex
	started  bool
	closed   bool
	cancelFn context.CancelFunc
}

// NewWorkerPool creates a new worker pool for processing events.
func NewWorkerPool(config WorkerPoolConfig, processor EventProcessor, logger *observability.Logger) WorkerPool {
	defaults := DefaultWorkerPoolConfig()
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}

	return &pool{
		config:    config,
		processor: processor,
		logger:    logger,
		eventChan: make(chan EventMessage, config.QueueSize),
	}
}

func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	if p.closed {
		return errPoolClosed
	}

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancelFn = cancel
	p.started = true

	for i := 0; i < p.config.NumWorkers; i++ {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}

	p.logger.Info(ctx, fmt.Sprintf("Started %d workers for %s processor", p.config.NumWorkers, p.processor.Name()))
	return nil
}

func (p *pool) Submit(ctx context.Context, event EventMessage) error {
	// The read lock keeps eventChan open while we wait for a slot
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.acceptingLocked(); err != nil {
		return err
	}

	select {
	case p.eventChan <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *pool) TrySubmit(event EventMessage) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.acceptingLocked(); err != nil {
		return err
	}

	select {
	case p.eventChan <- event:
		return nil
	default:
		observability.RecordDispatchDropped(p.processor.Name())
		return ErrQueueFull
	}
}

func (p *pool) acceptingLocked() error {
	if !p.started {
		return fmt.Errorf("worker pool not started")
	}
	if p.closed {
		return errPoolClosed
	}
	return nil
}

func (p *pool) Drain(ctx context.Context) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return fmt.Errorf("worker pool not started")
	}
	if p.closed {
		p.mu.Unlock()
		return errPoolClosed
	}
	p.closed = true
	close(p.eventChan)
	pending := len(p.eventChan)
	p.mu.Unlock()

	p.logger.Info(ctx, fmt.Sprintf("Draining %s worker pool with %d queued events", p.processor.Name(), pending))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	drainCtx, cancel := context.WithTimeout(ctx, p.config.DrainTimeout)
	defer cancel()

	select {
	case <-done:
		p.logger.Info(ctx, fmt.Sprintf("Drained %s worker pool", p.processor.Name()))
		return nil
	case <-drainCtx.Done():
		p.logger.Warn(ctx, fmt.Sprintf("Drain timeout exceeded for %s worker pool, cancelling workers", p.processor.Name()))
		p.Stop()
		return fmt.Errorf("drain timeout exceeded")
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancelFn != nil {
		p.cancelFn()
	}
	if !p.closed {
		p.closed = true
		close(p.eventChan)
	}
}

func (p *pool) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()

	workerCtx := observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: workerID},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-p.eventChan:
			if !ok {
				return
			}
			eventCtx := observability.WithFields(workerCtx,
				observability.Field{Key: "event_id", Value: event.ID},
				observability.Field{Key: "event_type", Value: event.Type},
			)
			if err := process(eventCtx, p.processor, event); err != nil {
				p.logger.Error(eventCtx, "failed to process queued event", err)
			}
		}
	}
}

// process runs the processor and turns a panic into an error
func process(ctx context.Context, processor EventProcessor, event EventMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s processor panicked: %v", processor.Name(), r)
		}
	}()
	return processor.Process(ctx, event)
}
