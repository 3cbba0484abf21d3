package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const sqlUpsertDeviceFingerprint = `
INSERT INTO device_fingerprints (fingerprint_hash, last_seen_at)
VALUES ($1, NOW())
ON CONFLICT (fingerprint_hash) DO UPDATE SET last_seen_at = NOW()
RETURNING id, fingerprint_hash, total_accounts, last_seen_at, created_at
`

// UpsertDeviceFingerprint creates the fingerprint on first sighting, otherwise bumps last_seen_at
func (s *Store) UpsertDeviceFingerprint(ctx context.Context, fingerprintHash string) (DeviceFingerprint, error) {
	var fingerprint DeviceFingerprint
	err := s.db.GetContext(ctx, &fingerprint, sqlUpsertDeviceFingerprint, fingerprintHash)
	if err != nil {
		return DeviceFingerprint{}, fmt.Errorf("failed to upsert device fingerprint: %w", err)
	}
	return fingerprint, nil
}

const sqlUpsertDeviceFingerprintAccount = `
INSERT INTO device_fingerprint_accounts (fingerprint_id, account_id, last_seen_at)
VALUES ($1, $2, NOW())
ON CONFLICT (fingerprint_id, account_id) DO UPDATE SET last_seen_at = NOW()
`

// UpsertDeviceFingerprintAccount links an account to a fingerprint. Relinking only bumps last_seen_at.
func (s *Store) UpsertDeviceFingerprintAccount(ctx context.Context, fingerprintID, accountID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlUpsertDeviceFingerprintAccount, fingerprintID, accountID)
	if err != nil {
		return fmt.Errorf("failed to upsert device fingerprint account: %w", err)
	}
	return nil
}

const sqlRefreshDeviceFingerprintTotalAccounts = `
UPDATE device_fingerprints
SET total_accounts = (
	SELECT COUNT(DISTINCT account_id)
	FROM device_fingerprint_accounts
	WHERE fingerprint_id = $1
)
WHERE id = $1
RETURNING total_accounts
`

// RefreshDeviceFingerprintTotalAccounts recomputes and stores the distinct account count of a fingerprint
func (s *Store) RefreshDeviceFingerprintTotalAccounts(ctx context.Context, fingerprintID uuid.UUID) (int, error) {
	var total int
	err := s.db.GetContext(ctx, &total, sqlRefreshDeviceFingerprintTotalAccounts, fingerprintID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to refresh device fingerprint total accounts: %w", err)
	}
	return total, nil
}

const sqlGetAccountIDsByFingerprintHash = `
SELECT dfa.account_id
FROM device_fingerprint_accounts dfa
JOIN device_fingerprints df ON df.id = dfa.fingerprint_id
WHERE df.fingerprint_hash = $1
ORDER BY dfa.created_at ASC
`

// GetAccountIDsByFingerprintHash retrieves every account linked to a fingerprint
func (s *Store) GetAccountIDsByFingerprintHash(ctx context.Context, fingerprintHash string) ([]uuid.UUID, error) {
	var accountIDs []uuid.UUID
	err := s.db.SelectContext(ctx, &accountIDs, sqlGetAccountIDsByFingerprintHash, fingerprintHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get account ids by fingerprint hash: %w", err)
	}
	return accountIDs, nil
}

const sqlCountFingerprintAccountsAmong = `
SELECT COUNT(DISTINCT dfa.account_id)
FROM device_fingerprint_accounts dfa
JOIN device_fingerprints df ON df.id = dfa.fingerprint_id
WHERE df.fingerprint_hash = $1 AND dfa.account_id = ANY($2::uuid[])
`

// CountFingerprintAccountsAmong counts how many of the given accounts are linked to a fingerprint
func (s *Store) CountFingerprintAccountsAmong(ctx context.Context, fingerprintHash string, accountIDs []uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountFingerprintAccountsAmong, fingerprintHash, pq.Array(uuidStrings(accountIDs)))
	if err != nil {
		return 0, fmt.Errorf("failed to count fingerprint accounts: %w", err)
	}
	return count, nil
}

// uuidStrings converts ids into their text form for array parameters
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
