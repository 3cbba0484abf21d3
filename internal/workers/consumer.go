package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"referral-guard/internal/observability"

	kafkago "github.com/segmentio/kafka-go"
)

// ConsumerConfig holds configuration for the Kafka event consumer.
type ConsumerConfig struct {
	Brokers       []string
	ConsumerGroup string
	Topic         string

	NumWorkers int
	QueueSize  int

	// DrainTimeout bounds the wait for in-flight events on Stop
	DrainTimeout time.Duration

	// FetchBackoff is the pause after a failed fetch
	FetchBackoff time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig(brokers []string, consumerGroup, topic string) ConsumerConfig {
	return ConsumerConfig{
		Brokers:       brokers,
		ConsumerGroup: consumerGroup,
		Topic:         topic,
		NumWorkers:    8,
		QueueSize:     1000,
		DrainTimeout:  30 * time.Second,
		FetchBackoff:  time.Second,
	}
}

// messageReader is the subset of *kafkago.Reader the consumer needs
type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type fetchedEvent struct {
	event EventMessage
	msg   kafkago.Message
}

type consumer struct {
	config    ConsumerConfig
	reader    messageReader
	processor EventProcessor
	logger    *observability.Logger

	eventCh chan fetchedEvent

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopping atomic.Bool
	stopOnce sync.Once
}

// NewConsumer creates a Kafka consumer that commits an offset only after the
// processor succeeds for it.
func NewConsumer(config ConsumerConfig, processor EventProcessor, logger *observability.Logger) EventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.ConsumerGroup,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		StartOffset:    kafkago.FirstOffset,
		CommitInterval: 0,
	})
	return newConsumer(config, reader, processor, logger)
}

func newConsumer(config ConsumerConfig, reader messageReader, processor EventProcessor, logger *observability.Logger) *consumer {
	defaults := DefaultConsumerConfig(nil, "", "")
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}
	if config.FetchBackoff <= 0 {
		config.FetchBackoff = defaults.FetchBackoff
	}

	c := &consumer{
		config:    config,
		reader:    reader,
		processor: processor,
		logger:    logger,
		eventCh:   make(chan fetchedEvent, config.QueueSize),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}

	logger.Info(c.logContext(context.Background()), fmt.Sprintf("Initialized consumer for %s processor", processor.Name()))
	return c
}

func (c *consumer) logContext(ctx context.Context) context.Context {
	return observability.WithFields(ctx,
		observability.Field{Key: "processor", Value: c.processor.Name()},
		observability.Field{Key: "consumer_group", Value: c.config.ConsumerGroup},
		observability.Field{Key: "topic", Value: c.config.Topic},
	)
}

// Start consumes events and blocks until Stop is called or ctx is cancelled.
func (c *consumer) Start(ctx context.Context) error {
	defer close(c.doneCh)

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.stopCh:
			cancel()
		case <-fetchCtx.Done():
		}
	}()

	// Workers run on a detached context so in-flight checks finish after Stop
	workerCtx := c.logContext(context.Background())
	logCtx := c.logContext(fetchCtx)

	c.logger.Info(logCtx, fmt.Sprintf("Starting consumer for %s with %d workers", c.processor.Name(), c.config.NumWorkers))

	var wg sync.WaitGroup
	for i := 0; i < c.config.NumWorkers; i++ {
		wg.Add(1)
		go c.worker(workerCtx, &wg, i)
	}

	c.fetchLoop(logCtx)
	close(c.eventCh)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info(workerCtx, "All workers finished processing")
	case <-time.After(c.config.DrainTimeout):
		c.logger.Warn(workerCtx, "Drain timeout exceeded, uncommitted events will be redelivered")
	}

	if err := c.reader.Close(); err != nil {
		c.logger.Error(workerCtx, "failed to close kafka reader", err)
	}

	c.logger.Info(workerCtx, fmt.Sprintf("Consumer stopped for %s", c.processor.Name()))
	return nil
}

func (c *consumer) fetchLoop(ctx context.Context) {
	for !c.stopping.Load() {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			select {
			case <-time.After(c.config.FetchBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Poison messages are committed so the partition keeps moving
			c.logger.Error(ctx, "failed to unmarshal event, skipping", err)
			observability.RecordMalformedEventSkipped(c.config.Topic)
			if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
				c.logger.Error(ctx, "failed to commit skipped message", commitErr)
			}
			continue
		}

		select {
		case c.eventCh <- fetchedEvent{event: event, msg: msg}:
		case <-ctx.Done():
			return
		}
	}
}

func (c *consumer) worker(ctx context.Context, wg *sync.WaitGroup, id int) {
	defer wg.Done()

	ctx = observability.WithFields(ctx, observability.Field{Key: "worker_id", Value: id})

	for e := range c.eventCh {
		eventCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_id", Value: e.event.ID},
			observability.Field{Key: "event_type", Value: e.event.Type},
			observability.Field{Key: "partition", Value: e.msg.Partition},
			observability.Field{Key: "offset", Value: e.msg.Offset},
		)

		if err := process(eventCtx, c.processor, e.event); err != nil {
			c.logger.Error(eventCtx, "failed to process event, leaving offset uncommitted", err)
			continue
		}

		if err := c.reader.CommitMessages(context.Background(), e.msg); err != nil {
			c.logger.Error(eventCtx, "failed to commit offset", err)
		}
	}
}

// Stop cancels fetching and returns once Start has drained its workers.
// It must only be called after Start.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		c.logger.Info(c.logContext(context.Background()), fmt.Sprintf("Stopping consumer for %s", c.processor.Name()))
		c.stopping.Store(true)
		close(c.stopCh)
		<-c.doneCh
	})
}
