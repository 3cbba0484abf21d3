package consumer

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=consumer

import (
	"context"
	"time"

	"referral-guard/internal/fraud"
)

// FraudChecker runs a fraud check and records its suspicions
type FraudChecker interface {
	PerformFraudCheckAndRecord(ctx context.Context, params fraud.CheckParams)
}

// EventClaimer marks an event as handled so redelivered copies are skipped
type EventClaimer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
