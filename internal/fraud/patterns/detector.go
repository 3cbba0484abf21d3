package patterns

import (
	"context"
	"fmt"
	"time"

	"referral-guard/internal/fraud"
	"referral-guard/internal/observability"

	"github.com/google/uuid"
)

const (
	window24h = 24 * time.Hour
	window7d  = 7 * 24 * time.Hour
)

// Detector computes referral velocity and early-cancellation statistics for a referrer
type Detector struct {
	store  PatternStore
	cfg    fraud.Config
	logger *observability.Logger
	now    func() time.Time
}

// New creates a pattern detector using the wall clock
func New(store PatternStore, cfg fraud.Config, logger *observability.Logger) *Detector {
	return &Detector{
		store:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// CheckPatterns runs the velocity and early-cancellation checks. Each half
// fails open on its own: a store error only clears that half's flags.
func (d *Detector) CheckPatterns(ctx context.Context, referrerID uuid.UUID) fraud.PatternCheckResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID},
		observability.Field{Key: "detector", Value: "patterns"},
	)

	var result fraud.PatternCheckResult
	now := d.now()

	if err := d.checkVelocity(ctx, referrerID, now, &result); err != nil {
		d.logger.Error(ctx, "referral velocity check failed, treating as clean", err)
	}
	if err := d.checkQuickCancellations(ctx, referrerID, &result); err != nil {
		d.logger.Error(ctx, "quick cancellation check failed, treating as clean", err)
	}

	return result
}

func (d *Detector) checkVelocity(ctx context.Context, referrerID uuid.UUID, now time.Time, result *fraud.PatternCheckResult) error {
	count24h, err := d.store.CountReferralsByReferrerSince(ctx, referrerID, now.Add(-window24h))
	if err != nil {
		return fmt.Errorf("failed to count referrals in last 24h: %w", err)
	}
	count7d, err := d.store.CountReferralsByReferrerSince(ctx, referrerID, now.Add(-window7d))
	if err != nil {
		return fmt.Errorf("failed to count referrals in last 7d: %w", err)
	}

	result.Count24h = count24h
	result.Count7d = count7d

	switch {
	case count24h > d.cfg.RapidReferrals24hLimit:
		result.ReferralCount = count24h
		result.ReferralWindow = "24h"
	case count7d > d.cfg.RapidReferrals7dLimit:
		result.ReferralCount = count7d
		result.ReferralWindow = "7d"
	default:
		return nil
	}

	result.RapidReferrals = true
	result.RapidSeverity = fraud.SeverityMedium
	if result.ReferralCount > d.cfg.RapidHighAbove {
		result.RapidSeverity = fraud.SeverityHigh
	}
	result.Details = append(result.Details,
		fmt.Sprintf("%d referrals in the last %s", result.ReferralCount, result.ReferralWindow))
	return nil
}

func (d *Detector) checkQuickCancellations(ctx context.Context, referrerID uuid.UUID, result *fraud.PatternCheckResult) error {
	referrals, err := d.store.GetPaidReferralsByReferrer(ctx, referrerID)
	if err != nil {
		return fmt.Errorf("failed to get paid referrals: %w", err)
	}
	if len(referrals) == 0 {
		return nil
	}

	accountIDs := make([]uuid.UUID, 0, len(referrals))
	for _, r := range referrals {
		accountIDs = append(accountIDs, r.ReferredAccountID)
	}
	subscriptions, err := d.store.GetLatestSubscriptionsByAccounts(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to get referred subscriptions: %w", err)
	}

	canceledAt := make(map[uuid.UUID]time.Time, len(subscriptions))
	for _, s := range subscriptions {
		if s.CanceledAt != nil {
			canceledAt[s.AccountID] = *s.CanceledAt
		}
	}

	window := time.Duration(d.cfg.QuickCancelDays) * 24 * time.Hour
	var cancelled []uuid.UUID
	for _, r := range referrals {
		cancelTime, ok := canceledAt[r.ReferredAccountID]
		if !ok || r.FirstPaymentAt == nil {
			continue
		}
		elapsed := cancelTime.Sub(*r.FirstPaymentAt)
		if elapsed >= 0 && elapsed <= window {
			cancelled = append(cancelled, r.ReferredAccountID)
		}
	}

	result.CancelCount = len(cancelled)
	result.CancelledAccounts = cancelled
	if result.CancelCount < d.cfg.QuickCancelThreshold {
		return nil
	}

	result.QuickCancellations = true
	result.CancelSeverity = fraud.SeverityMedium
	if result.CancelCount > d.cfg.QuickCancelHighAbove {
		result.CancelSeverity = fraud.SeverityHigh
	}
	result.Details = append(result.Details,
		fmt.Sprintf("%d referred accounts cancelled within %d days of first payment", result.CancelCount, d.cfg.QuickCancelDays))
	return nil
}

// CheckSharedIP counts registrations from ipAddress. It only corroborates other
// signals and fails open on store errors.
func (d *Detector) CheckSharedIP(ctx context.Context, referrerID uuid.UUID, ipAddress string) fraud.SharedIPCheckResult {
	count, err := d.store.CountTrackingEventsByIP(ctx, ipAddress, d.cfg.SharedIPEventType)
	if err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "referrer_id", Value: referrerID},
			observability.Field{Key: "detector", Value: "shared_ip"},
		)
		d.logger.Error(ctx, "shared ip check failed, treating as clean", err)
		return fraud.SharedIPCheckResult{}
	}

	return fraud.SharedIPCheckResult{
		IsSuspicious: count > d.cfg.SharedIPLimit,
		Count:        count,
	}
}
