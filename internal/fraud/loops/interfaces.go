package loops

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=loops

import (
	"context"

	"github.com/google/uuid"
)

// GraphStore runs the referral ancestry walk in a single recursive query
type GraphStore interface {
	GetReferralAncestryPath(ctx context.Context, fromAccountID, toAccountID uuid.UUID, maxDepth int) ([]uuid.UUID, error)
}

// ParentStore answers "who referred this account", one hop at a time
type ParentStore interface {
	GetReferrerAccountID(ctx context.Context, accountID uuid.UUID) (uuid.UUID, error)
}
