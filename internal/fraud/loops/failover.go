package loops

import (
	"context"
	"errors"
	"time"

	"referral-guard/internal/fraud"
	"referral-guard/internal/observability"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// FailoverDetector runs the primary detector behind a circuit breaker and
// answers from the fallback whenever the primary fails or the breaker is open.
type FailoverDetector struct {
	primary  fraud.LoopDetector
	fallback fraud.LoopDetector
	breaker  *gobreaker.CircuitBreaker
	logger   *observability.Logger
}

// NewFailoverDetector wires primary and fallback behind a breaker that trips
// after five consecutive primary failures.
func NewFailoverDetector(primary, fallback fraud.LoopDetector, logger *observability.Logger) *FailoverDetector {
	settings := gobreaker.Settings{
		Name:        "loop-detector-recursive",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			ctx := observability.WithFields(context.Background(),
				observability.Field{Key: "breaker", Value: name},
				observability.Field{Key: "from", Value: from.String()},
				observability.Field{Key: "to", Value: to.String()},
			)
			logger.Warn(ctx, "loop detector circuit breaker state change")
		},
	}

	return &FailoverDetector{
		primary:  primary,
		fallback: fallback,
		breaker:  gobreaker.NewCircuitBreaker(settings),
		logger:   logger,
	}
}

// DetectLoop implements fraud.LoopDetector
func (d *FailoverDetector) DetectLoop(ctx context.Context, referrerID, referredID uuid.UUID, maxDepth int) (fraud.LoopCheckResult, error) {
	result, err := d.breaker.Execute(func() (interface{}, error) {
		return d.primary.DetectLoop(ctx, referrerID, referredID, maxDepth)
	})
	if err == nil {
		return result.(fraud.LoopCheckResult), nil
	}

	cause := "primary_error"
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		cause = "breaker_open"
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID},
		observability.Field{Key: "referred_id", Value: referredID},
		observability.Field{Key: "fallback_cause", Value: cause},
	)
	d.logger.InfoWithError(ctx, "recursive loop detection unavailable, using iterative walk", err)
	observability.RecordLoopDetectorFallback(cause)

	return d.fallback.DetectLoop(ctx, referrerID, referredID, maxDepth)
}

// State exposes the breaker state for health reporting
func (d *FailoverDetector) State() gobreaker.State {
	return d.breaker.State()
}
