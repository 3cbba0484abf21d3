package devices

import (
	"context"
	"fmt"

	"referral-guard/internal/fraud"
	"referral-guard/internal/observability"

	"github.com/google/uuid"
)

// Registry tracks which accounts have been seen on which device fingerprints
type Registry struct {
	store  DeviceStore
	cfg    fraud.Config
	logger *observability.Logger
}

// New creates a device fingerprint registry
func New(store DeviceStore, cfg fraud.Config, logger *observability.Logger) *Registry {
	return &Registry{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// RecordSighting links accountID to the fingerprint, creating the fingerprint on
// first sight, and refreshes its distinct account total. Repeated sightings of
// the same pair only bump timestamps.
func (r *Registry) RecordSighting(ctx context.Context, fingerprintHash string, accountID uuid.UUID) (uuid.UUID, error) {
	fingerprint, err := r.store.UpsertDeviceFingerprint(ctx, fingerprintHash)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert device fingerprint: %w: %w", fraud.ErrStorage, err)
	}

	if err := r.store.UpsertDeviceFingerprintAccount(ctx, fingerprint.ID, accountID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to link account to device fingerprint: %w: %w", fraud.ErrStorage, err)
	}

	if _, err := r.store.RefreshDeviceFingerprintTotalAccounts(ctx, fingerprint.ID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to refresh device fingerprint account total: %w: %w", fraud.ErrStorage, err)
	}

	return fingerprint.ID, nil
}

// CheckSharedAccounts reports how many accounts share the fingerprint, counting
// currentAccountID even when its sighting has not been recorded yet.
// Store failures are logged and reported as not suspicious.
func (r *Registry) CheckSharedAccounts(ctx context.Context, fingerprintHash string, currentAccountID uuid.UUID) fraud.SameDeviceCheckResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "account_id", Value: currentAccountID},
		observability.Field{Key: "detector", Value: "same_device"},
	)

	accountIDs, err := r.store.GetAccountIDsByFingerprintHash(ctx, fingerprintHash)
	if err != nil {
		r.logger.Error(ctx, "same device check failed, treating as clean", err)
		return fraud.SameDeviceCheckResult{}
	}

	found := false
	for _, id := range accountIDs {
		if id == currentAccountID {
			found = true
			break
		}
	}
	if !found {
		accountIDs = append(accountIDs, currentAccountID)
	}

	severity := r.cfg.SameDeviceSeverity(len(accountIDs))
	return fraud.SameDeviceCheckResult{
		IsSuspicious: severity != fraud.SeverityNone,
		AccountCount: len(accountIDs),
		AccountIDs:   accountIDs,
		Severity:     severity,
	}
}

// IsPairOnSameDevice reports whether both accounts are linked to the fingerprint.
// Store failures are logged and reported as false.
func (r *Registry) IsPairOnSameDevice(ctx context.Context, fingerprintHash string, accountA, accountB uuid.UUID) bool {
	accountIDs := []uuid.UUID{accountA}
	if accountB != accountA {
		accountIDs = append(accountIDs, accountB)
	}

	count, err := r.store.CountFingerprintAccountsAmong(ctx, fingerprintHash, accountIDs)
	if err != nil {
		r.logger.Error(ctx, "same device pair lookup failed", err)
		return false
	}
	return count == len(accountIDs)
}
