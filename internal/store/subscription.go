package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const sqlGetLatestSubscriptionsByAccounts = `
SELECT DISTINCT ON (account_id) id, account_id, status, started_at, canceled_at, created_at
FROM subscriptions
WHERE account_id = ANY($1::uuid[])
ORDER BY account_id, created_at DESC
`

// GetLatestSubscriptionsByAccounts retrieves the most recent subscription of each account.
// Accounts without a subscription are absent from the result.
func (s *Store) GetLatestSubscriptionsByAccounts(ctx context.Context, accountIDs []uuid.UUID) ([]Subscription, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	var subscriptions []Subscription
	err := s.db.SelectContext(ctx, &subscriptions, sqlGetLatestSubscriptionsByAccounts, pq.Array(uuidStrings(accountIDs)))
	if err != nil {
		s.logger.Error(ctx, "failed to get latest subscriptions by accounts", err)
		return nil, fmt.Errorf("failed to get latest subscriptions by accounts: %w", err)
	}
	return subscriptions, nil
}
