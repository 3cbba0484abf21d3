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

// IterativeDetector walks the referral ancestry one parent lookup at a time
type IterativeDetector struct {
	store  ParentStore
	logger *observability.Logger
}

// NewIterativeDetector creates the client-side loop detector
func NewIterativeDetector(store ParentStore, logger *observability.Logger) *IterativeDetector {
	return &IterativeDetector{store: store, logger: logger}
}

// DetectLoop ascends from referredID until it reaches referrerID (loop), a root
// account, an account it already visited, or the maxDepth bound.
func (d *IterativeDetector) DetectLoop(ctx context.Context, referrerID, referredID uuid.UUID, maxDepth int) (fraud.LoopCheckResult, error) {
	if referrerID == referredID {
		return selfReferral(referrerID), nil
	}

	chain := []uuid.UUID{referredID}
	visited := map[uuid.UUID]struct{}{referredID: {}}
	current := referredID

	for depth := 1; depth <= maxDepth; depth++ {
		parent, err := d.store.GetReferrerAccountID(ctx, current)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fraud.LoopCheckResult{}, nil
			}
			return fraud.LoopCheckResult{}, fmt.Errorf("failed to walk referral chain: %w: %w", fraud.ErrStorage, err)
		}

		chain = append(chain, parent)
		if parent == referrerID {
			return fraud.LoopCheckResult{
				IsLoop:     true,
				LoopChain:  chain,
				LoopLength: len(chain),
			}, nil
		}

		// A repeat means the stored tree already contains a cycle that does not
		// involve the candidate referrer. It is not this edge's loop.
		if _, seen := visited[parent]; seen {
			cycleCtx := observability.WithFields(ctx,
				observability.Field{Key: "referrer_id", Value: referrerID},
				observability.Field{Key: "referred_id", Value: referredID},
				observability.Field{Key: "repeated_account_id", Value: parent},
				observability.Field{Key: "depth", Value: depth},
			)
			d.logger.Warn(cycleCtx, "pre-existing cycle found in referral graph")
			observability.RecordReferralGraphCycle()
			return fraud.LoopCheckResult{}, nil
		}

		visited[parent] = struct{}{}
		current = parent
	}

	return fraud.LoopCheckResult{DepthExceeded: true}, nil
}
