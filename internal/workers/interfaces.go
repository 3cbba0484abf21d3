package workers

import (
	"context"
	"errors"

	kafka "referral-guard/internal/clients/kafka"
)

// EventMessage is the envelope shared by the Kafka consumer and the in-process pool
type EventMessage = kafka.EventMessage

// ErrQueueFull is returned by TrySubmit when no queue slot is free
var ErrQueueFull = errors.New("worker queue is full")

// EventProcessor handles one event. Implementations must tolerate redelivery:
// a returned error leaves the Kafka offset uncommitted.
type EventProcessor interface {
	Process(ctx context.Context, event EventMessage) error

	// Name labels logs and metrics
	Name() string
}

// EventConsumer reads events from Kafka and fans them out to workers
type EventConsumer interface {
	// Start blocks until Stop is called
	Start(ctx context.Context) error

	// Stop stops fetching and waits for in-flight events
	Stop()
}

// WorkerPool runs an EventProcessor over an in-process bounded queue
type WorkerPool interface {
	Start(ctx context.Context) error

	// Submit blocks until the event is queued or ctx is done
	Submit(ctx context.Context, event EventMessage) error

	// TrySubmit queues the event without blocking. A full queue drops the
	// event and returns ErrQueueFull.
	TrySubmit(event EventMessage) error

	// Drain stops intake and waits for queued events, bounded by the drain timeout
	Drain(ctx context.Context) error

	Stop()
}
