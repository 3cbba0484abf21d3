package patterns

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=patterns

import (
	"context"
	"time"

	"referral-guard/internal/store"

	"github.com/google/uuid"
)

// PatternStore defines the store operations required by the pattern detector
type PatternStore interface {
	// CountReferralsByReferrerSince counts referrals made by referrerID since the given time
	CountReferralsByReferrerSince(ctx context.Context, referrerID uuid.UUID, since time.Time) (int, error)

	// GetPaidReferralsByReferrer lists referrals whose referred account has paid
	GetPaidReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]store.Referral, error)

	// GetLatestSubscriptionsByAccounts returns the newest subscription of each account
	GetLatestSubscriptionsByAccounts(ctx context.Context, accountIDs []uuid.UUID) ([]store.Subscription, error)

	// CountTrackingEventsByIP counts logged events of one type from an IP address
	CountTrackingEventsByIP(ctx context.Context, ipAddress, eventType string) (int, error)
}
