package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor
//go:generate go run go.uber.org/mock/mockgen@latest -destination=loop_detector_mock_test.go -package=processor referral-guard/internal/fraud LoopDetector

import (
	"context"

	"referral-guard/internal/fraud"
	"referral-guard/internal/store"

	"github.com/google/uuid"
)

// DeviceRegistry is the device fingerprint registry used by the orchestrator
type DeviceRegistry interface {
	RecordSighting(ctx context.Context, fingerprintHash string, accountID uuid.UUID) (uuid.UUID, error)
	CheckSharedAccounts(ctx context.Context, fingerprintHash string, currentAccountID uuid.UUID) fraud.SameDeviceCheckResult
	IsPairOnSameDevice(ctx context.Context, fingerprintHash string, accountA, accountB uuid.UUID) bool
}

// PatternDetector computes velocity, cancellation and shared-IP statistics
type PatternDetector interface {
	CheckPatterns(ctx context.Context, referrerID uuid.UUID) fraud.PatternCheckResult
	CheckSharedIP(ctx context.Context, referrerID uuid.UUID, ipAddress string) fraud.SharedIPCheckResult
}

// SuspicionStore persists suspicious referrals
type SuspicionStore interface {
	CreateSuspiciousReferral(ctx context.Context, params store.CreateSuspiciousReferralParams) (store.SuspiciousReferral, error)
}

// Notifier announces recorded suspicions to downstream consumers
type Notifier interface {
	NotifySuspicionRecorded(ctx context.Context, suspicious store.SuspiciousReferral) error
}
