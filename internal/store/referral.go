package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const sqlGetReferrerAccountID = `
SELECT referrer_account_id
FROM referrals
WHERE referred_account_id = $1
ORDER BY created_at ASC
LIMIT 1
`

// GetReferrerAccountID returns who referred the given account. ErrNotFound means the account is a root.
func (s *Store) GetReferrerAccountID(ctx context.Context, accountID uuid.UUID) (uuid.UUID, error) {
	var referrerID uuid.UUID
	err := s.db.GetContext(ctx, &referrerID, sqlGetReferrerAccountID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referrer account id", err)
		return uuid.Nil, fmt.Errorf("failed to get referrer account id: %w", err)
	}
	return referrerID, nil
}

// sqlGetReferralAncestryPath walks up the referral tree from $1 following
// referred -> referrer edges for at most $3 hops, and returns the first path
// that reaches $2. Paths never revisit an account so corrupt cyclic data
// cannot make the recursion unbounded.
const sqlGetReferralAncestryPath = `
WITH RECURSIVE ancestry AS (
	SELECT r.referrer_account_id AS account_id,
	       1 AS depth,
	       ARRAY[$1::uuid, r.referrer_account_id] AS path
	FROM referrals r
	WHERE r.referred_account_id = $1::uuid
	UNION ALL
	SELECT r.referrer_account_id,
	       a.depth + 1,
	       a.path || r.referrer_account_id
	FROM ancestry a
	JOIN referrals r ON r.referred_account_id = a.account_id
	WHERE a.depth < $3
	  AND a.account_id <> $2::uuid
	  AND NOT r.referrer_account_id = ANY(a.path)
)
SELECT path::text[]
FROM ancestry
WHERE account_id = $2::uuid
ORDER BY depth ASC
LIMIT 1
`

// GetReferralAncestryPath returns the chain [from, ..., to] when to is an
// ancestor of from within maxDepth hops. ErrNotFound means no such chain.
func (s *Store) GetReferralAncestryPath(ctx context.Context, fromAccountID, toAccountID uuid.UUID, maxDepth int) ([]uuid.UUID, error) {
	var path pq.StringArray
	err := s.db.GetContext(ctx, &path, sqlGetReferralAncestryPath, fromAccountID, toAccountID, maxDepth)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral ancestry path", err)
		return nil, fmt.Errorf("failed to get referral ancestry path: %w", err)
	}

	chain := make([]uuid.UUID, 0, len(path))
	for _, raw := range path {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse referral ancestry path: %w", err)
		}
		chain = append(chain, id)
	}
	return chain, nil
}

const sqlCountReferralsByReferrerSince = `
SELECT COUNT(*)
FROM referrals
WHERE referrer_account_id = $1 AND created_at >= $2
`

// CountReferralsByReferrerSince counts referrals made by an account since the given time (for velocity checks)
func (s *Store) CountReferralsByReferrerSince(ctx context.Context, referrerID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountReferralsByReferrerSince, referrerID, since)
	if err != nil {
		s.logger.Error(ctx, "failed to count referrals by referrer", err)
		return 0, fmt.Errorf("failed to count referrals by referrer: %w", err)
	}
	return count, nil
}

const sqlGetPaidReferralsByReferrer = `
SELECT id, referrer_account_id, referred_account_id, first_payment_at, created_at
FROM referrals
WHERE referrer_account_id = $1 AND first_payment_at IS NOT NULL
ORDER BY first_payment_at DESC
`

// GetPaidReferralsByReferrer retrieves referrals whose referred account has made a first payment
func (s *Store) GetPaidReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]Referral, error) {
	var referrals []Referral
	err := s.db.SelectContext(ctx, &referrals, sqlGetPaidReferralsByReferrer, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to get paid referrals by referrer", err)
		return nil, fmt.Errorf("failed to get paid referrals by referrer: %w", err)
	}
	return referrals, nil
}
