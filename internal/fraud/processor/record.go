package processor

import (
	"context"
	"fmt"

	"referral-guard/internal/fraud"
	"referral-guard/internal/observability"
	"referral-guard/internal/store"
)

// PerformFraudCheckAndRecord records the device sighting, runs the fraud check
// and writes one pending suspicious referral per suspicion. It is the error
// boundary of the fraud engine: every failure, panics included, is logged and
// dropped so the referral flow that triggered it is never affected.
func (p *Processor) PerformFraudCheckAndRecord(ctx context.Context, params fraud.CheckParams) {
	ctx = withCheckFields(ctx, params)

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(ctx, "fraud check and record panicked", fmt.Errorf("panic: %v", r))
		}
	}()

	// The sighting goes first so the same-device check sees the referred account
	if params.FingerprintHash != nil {
		if _, err := p.devices.RecordSighting(ctx, *params.FingerprintHash, params.ReferredAccountID); err != nil {
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "detector", Value: branchSameDevice}),
				"failed to record device sighting", err)
		}
	}

	result := p.check(ctx, params)
	if !result.IsSuspicious {
		p.logger.Info(ctx, "fraud check completed - no suspicions")
		return
	}

	recorded := 0
	for _, suspicion := range result.Suspicions {
		if p.recordSuspicion(ctx, params, suspicion) {
			recorded++
		}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "suspicion_count", Value: len(result.Suspicions)},
		observability.Field{Key: "recorded_count", Value: recorded},
	)
	p.logger.Info(ctx, "fraud check completed with suspicions")
}

func (p *Processor) recordSuspicion(ctx context.Context, params fraud.CheckParams, suspicion fraud.Suspicion) bool {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "suspicion_type", Value: suspicion.Type},
		observability.Field{Key: "severity", Value: suspicion.Severity},
	)

	evidence, err := suspicion.EvidencePayload()
	if err != nil {
		p.logger.Error(ctx, "failed to build suspicion evidence", err)
		return false
	}

	suspicious, err := p.store.CreateSuspiciousReferral(ctx, store.CreateSuspiciousReferralParams{
		ReferralID:        params.ReferralID,
		ReferrerAccountID: params.ReferrerAccountID,
		ReferredAccountID: params.ReferredAccountID,
		SuspicionType:     string(suspicion.Type),
		Severity:          string(suspicion.Severity),
		Evidence:          store.JSONB(evidence),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record suspicious referral", err)
		return false
	}
	observability.RecordSuspicionRecorded(string(suspicion.Type))

	if p.notifier != nil {
		if err := p.notifier.NotifySuspicionRecorded(ctx, suspicious); err != nil {
			p.logger.Error(ctx, "failed to publish suspicion notification", err)
		}
	}
	return true
}

func withCheckFields(ctx context.Context, params fraud.CheckParams) context.Context {
	fields := []observability.Field{
		{Key: "referrer_account_id", Value: params.ReferrerAccountID},
		{Key: "referred_account_id", Value: params.ReferredAccountID},
	}
	if params.ReferralID != nil {
		fields = append(fields, observability.Field{Key: "referral_id", Value: *params.ReferralID})
	}
	return observability.WithFields(ctx, fields...)
}
