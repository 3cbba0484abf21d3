package consumer

import (
	"context"
	"fmt"
	"time"

	"referral-guard/internal/clients/kafka"
	"referral-guard/internal/observability"
	"referral-guard/internal/workers"
)

const claimKeyPrefix = "fraud-check:"

// FraudEventProcessor runs the fraud check for referral.created events
type FraudEventProcessor struct {
	checker   FraudChecker
	claimer   EventClaimer
	dedupeTTL time.Duration
	logger    *observability.Logger
}

// NewFraudEventProcessor creates the processor. A nil claimer disables
// redelivery dedupe.
func NewFraudEventProcessor(checker FraudChecker, claimer EventClaimer, dedupeTTL time.Duration, logger *observability.Logger) *FraudEventProcessor {
	return &FraudEventProcessor{
		checker:   checker,
		claimer:   claimer,
		dedupeTTL: dedupeTTL,
		logger:    logger,
	}
}

// Process handles one event. Malformed payloads are logged and skipped so they
// do not block the partition.
func (p *FraudEventProcessor) Process(ctx context.Context, event workers.EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: event.Type},
	)

	if event.Type != kafka.EventTypeReferralCreated {
		return nil
	}

	payload, err := DecodeReferralCreated(event)
	if err != nil {
		p.logger.Error(ctx, "skipping malformed referral event", err)
		return nil
	}
	params, err := payload.CheckParams()
	if err != nil {
		p.logger.Error(ctx, "skipping malformed referral event", err)
		return nil
	}

	if !p.claim(ctx, event, payload) {
		return nil
	}

	p.checker.PerformFraudCheckAndRecord(ctx, params)
	return nil
}

// claim reports whether this delivery should run the check. Redis failures
// let the check run.
func (p *FraudEventProcessor) claim(ctx context.Context, event workers.EventMessage, payload ReferralCreatedPayload) bool {
	if p.claimer == nil {
		return true
	}

	source, key := "event_id", claimKeyPrefix+"event:"+event.ID
	if payload.ReferralID != "" {
		source, key = "referral_id", claimKeyPrefix+"referral:"+payload.ReferralID
	}

	claimed, err := p.claimer.Claim(ctx, key, p.dedupeTTL)
	if err != nil {
		p.logger.Error(ctx, "failed to claim referral event, checking anyway", err)
		return true
	}
	if !claimed {
		observability.RecordDuplicateEventSkipped(source)
		p.logger.Info(ctx, fmt.Sprintf("skipping already checked referral event (%s)", key))
		return false
	}
	return true
}

// Name returns the processor name for logging
func (p *FraudEventProcessor) Name() string {
	return "fraud-check"
}
