package kafka

import (
	"context"
	"time"

	"referral-guard/internal/store"

	"github.com/google/uuid"
)

// EventPublisher publishes a single event
type EventPublisher interface {
	PublishEvent(ctx context.Context, event EventMessage) error
}

// SuspicionNotifier publishes a fraud.suspicion.recorded event per stored suspicious referral
type SuspicionNotifier struct {
	publisher EventPublisher
	now       func() time.Time
}

func NewSuspicionNotifier(publisher EventPublisher) *SuspicionNotifier {
	return &SuspicionNotifier{publisher: publisher, now: time.Now}
}

func (n *SuspicionNotifier) NotifySuspicionRecorded(ctx context.Context, suspicious store.SuspiciousReferral) error {
	data := map[string]interface{}{
		"suspicious_referral_id": suspicious.ID.String(),
		"referrer_account_id":    suspicious.ReferrerAccountID.String(),
		"referred_account_id":    suspicious.ReferredAccountID.String(),
		"suspicion_type":         suspicious.SuspicionType,
		"severity":               suspicious.Severity,
		"status":                 suspicious.Status,
	}
	if suspicious.ReferralID != nil {
		data["referral_id"] = suspicious.ReferralID.String()
	}

	return n.publisher.PublishEvent(ctx, EventMessage{
		ID:        uuid.New().String(),
		Type:      EventTypeSuspicionRecorded,
		AccountID: suspicious.ReferrerAccountID.String(),
		Data:      data,
		Timestamp: n.now().UTC(),
	})
}
