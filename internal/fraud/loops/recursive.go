package loops

import (
	"context"
	"errors"
	"fmt"

	"referral-guard/internal/fraud"
	"referral-guard/internal/observability"
	"referral-guard/internal/store"

	"github.com/google/uuid"
)

// RecursiveDetector walks the referral ancestry of the referred account in the
// database with one recursive query.
type RecursiveDetector struct {
	store  GraphStore
	logger *observability.Logger
}

// NewRecursiveDetector creates the query-backed loop detector
func NewRecursiveDetector(store GraphStore, logger *observability.Logger) *RecursiveDetector {
	return &RecursiveDetector{store: store, logger: logger}
}

// DetectLoop reports whether referrerID already sits above referredID in the
// referral tree within maxDepth hops. Query failures wrap fraud.ErrGraphQuery.
func (d *RecursiveDetector) DetectLoop(ctx context.Context, referrerID, referredID uuid.UUID, maxDepth int) (fraud.LoopCheckResult, error) {
	if referrerID == referredID {
		return selfReferral(referrerID), nil
	}
	if maxDepth < 1 {
		return fraud.LoopCheckResult{DepthExceeded: true}, nil
	}

	chain, err := d.store.GetReferralAncestryPath(ctx, referredID, referrerID, maxDepth)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fraud.LoopCheckResult{}, nil
		}
		return fraud.LoopCheckResult{}, fmt.Errorf("%w: %w", fraud.ErrGraphQuery, err)
	}

	return fraud.LoopCheckResult{
		IsLoop:     true,
		LoopChain:  chain,
		LoopLength: len(chain),
	}, nil
}

// selfReferral is the trivial loop detected before any lookup
func selfReferral(accountID uuid.UUID) fraud.LoopCheckResult {
	return fraud.LoopCheckResult{
		IsLoop:     true,
		LoopChain:  []uuid.UUID{accountID},
		LoopLength: 1,
	}
}
