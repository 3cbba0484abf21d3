package consumer

import (
	"encoding/json"
	"fmt"
	"time"

	"referral-guard/internal/clients/kafka"
	"referral-guard/internal/fraud"
	"referral-guard/internal/workers"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ReferralCreatedPayload is the data of a referral.created event and the body
// of the fraud check intake endpoint. Tags use gin's "binding" key so both
// entry points validate the same way.
type ReferralCreatedPayload struct {
	ReferralID        string `json:"referral_id,omitempty" binding:"omitempty,uuid"`
	ReferrerAccountID string `json:"referrer_account_id" binding:"required,uuid"`
	ReferredAccountID string `json:"referred_account_id" binding:"required,uuid"`
	FingerprintHash   string `json:"fingerprint_hash,omitempty" binding:"omitempty,max=256"`
	IPAddress         string `json:"ip_address,omitempty" binding:"omitempty,ip"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// DecodeReferralCreated reads and validates the payload carried in event.Data
func DecodeReferralCreated(event workers.EventMessage) (ReferralCreatedPayload, error) {
	var payload ReferralCreatedPayload

	raw, err := json.Marshal(event.Data)
	if err != nil {
		return payload, fmt.Errorf("failed to encode event data: %w", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("failed to decode referral payload: %w", err)
	}
	if err := validate.Struct(payload); err != nil {
		return payload, fmt.Errorf("invalid referral payload: %w", err)
	}
	return payload, nil
}

// CheckParams converts a validated payload. Empty optional fields become nil.
func (p ReferralCreatedPayload) CheckParams() (fraud.CheckParams, error) {
	referrerID, err := uuid.Parse(p.ReferrerAccountID)
	if err != nil {
		return fraud.CheckParams{}, fmt.Errorf("invalid referrer_account_id: %w", err)
	}
	referredID, err := uuid.Parse(p.ReferredAccountID)
	if err != nil {
		return fraud.CheckParams{}, fmt.Errorf("invalid referred_account_id: %w", err)
	}

	params := fraud.CheckParams{
		ReferrerAccountID: referrerID,
		ReferredAccountID: referredID,
	}
	if p.ReferralID != "" {
		referralID, err := uuid.Parse(p.ReferralID)
		if err != nil {
			return fraud.CheckParams{}, fmt.Errorf("invalid referral_id: %w", err)
		}
		params.ReferralID = &referralID
	}
	if p.FingerprintHash != "" {
		fingerprint := p.FingerprintHash
		params.FingerprintHash = &fingerprint
	}
	if p.IPAddress != "" {
		ip := p.IPAddress
		params.IPAddress = &ip
	}
	return params, nil
}

// NewReferralCreatedEvent wraps a payload in a referral.created event
func NewReferralCreatedEvent(payload ReferralCreatedPayload, now time.Time) workers.EventMessage {
	data := map[string]interface{}{
		"referrer_account_id": payload.ReferrerAccountID,
		"referred_account_id": payload.ReferredAccountID,
	}
	if payload.ReferralID != "" {
		data["referral_id"] = payload.ReferralID
	}
	if payload.FingerprintHash != "" {
		data["fingerprint_hash"] = payload.FingerprintHash
	}
	if payload.IPAddress != "" {
		data["ip_address"] = payload.IPAddress
	}

	return workers.EventMessage{
		ID:        uuid.New().String(),
		Type:      kafka.EventTypeReferralCreated,
		AccountID: payload.ReferrerAccountID,
		Data:      data,
		Timestamp: now.UTC(),
	}
}
