package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateSuspiciousReferralParams represents parameters for creating a suspicious referral record
type CreateSuspiciousReferralParams struct {
	ReferralID        *uuid.UUID
	ReferrerAccountID uuid.UUID
	ReferredAccountID uuid.UUID
	SuspicionType     string
	Severity          string
	Evidence          JSONB
}

const sqlCreateSuspiciousReferral = `
INSERT INTO suspicious_referrals (referral_id, referrer_account_id, referred_account_id, suspicion_type, severity, evidence, status)
VALUES ($1, $2, $3, $4, $5, $6, 'pending')
RETURNING id, referral_id, referrer_account_id, referred_account_id, suspicion_type, severity, evidence, status, reviewed_by, reviewed_at, review_notes, action_taken, created_at
`

// CreateSuspiciousReferral inserts a new suspicious referral in pending status
func (s *Store) CreateSuspiciousReferral(ctx context.Context, params CreateSuspiciousReferralParams) (SuspiciousReferral, error) {
	var suspicious SuspiciousReferral
	err := s.db.GetContext(ctx, &suspicious, sqlCreateSuspiciousReferral,
		params.ReferralID,
		params.ReferrerAccountID,
		params.ReferredAccountID,
		params.SuspicionType,
		params.Severity,
		params.Evidence)
	if err != nil {
		s.logger.Error(ctx, "failed to create suspicious referral", err)
		return SuspiciousReferral{}, fmt.Errorf("failed to create suspicious referral: %w", err)
	}
	return suspicious, nil
}
