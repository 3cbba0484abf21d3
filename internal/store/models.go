package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// ============================================================================
// Device fingerprints
// ============================================================================

// DeviceFingerprint is a device seen by the platform, keyed by an externally computed hash
type DeviceFingerprint struct {
	ID              uuid.UUID `db:"id" json:"id"`
	FingerprintHash string    `db:"fingerprint_hash" json:"fingerprint_hash"`
	TotalAccounts   int       `db:"total_accounts" json:"total_accounts"`
	LastSeenAt      time.Time `db:"last_seen_at" json:"last_seen_at"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// DeviceFingerprintAccount links an account to a fingerprint it was seen on
type DeviceFingerprintAccount struct {
	FingerprintID uuid.UUID `db:"fingerprint_id" json:"fingerprint_id"`
	AccountID     uuid.UUID `db:"account_id" json:"account_id"`
	LastSeenAt    time.Time `db:"last_seen_at" json:"last_seen_at"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// ============================================================================
// Referrals and subscriptions (owned by the referral and billing services)
// ============================================================================

// Referral is a referrer -> referred edge
type Referral struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	ReferrerAccountID uuid.UUID  `db:"referrer_account_id" json:"referrer_account_id"`
	ReferredAccountID uuid.UUID  `db:"referred_account_id" json:"referred_account_id"`
	FirstPaymentAt    *time.Time `db:"first_payment_at" json:"first_payment_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// Subscription is the billing state of an account
type Subscription struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	AccountID  uuid.UUID  `db:"account_id" json:"account_id"`
	Status     string     `db:"status" json:"status"`
	StartedAt  *time.Time `db:"started_at" json:"started_at,omitempty"`
	CanceledAt *time.Time `db:"canceled_at" json:"canceled_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// ============================================================================
// Suspicious referrals
// ============================================================================

// SuspiciousReferral is a reviewable piece of fraud evidence about one referral
type SuspiciousReferral struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	ReferralID        *uuid.UUID `db:"referral_id" json:"referral_id,omitempty"`
	ReferrerAccountID uuid.UUID  `db:"referrer_account_id" json:"referrer_account_id"`
	ReferredAccountID uuid.UUID  `db:"referred_account_id" json:"referred_account_id"`

	SuspicionType string `db:"suspicion_type" json:"suspicion_type"`
	Severity      string `db:"severity" json:"severity"`
	Evidence      JSONB  `db:"evidence" json:"evidence"`

	Status string `db:"status" json:"status"`

	ReviewedBy  *uuid.UUID `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewNotes *string    `db:"review_notes" json:"review_notes,omitempty"`
	ActionTaken *string    `db:"action_taken" json:"action_taken,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
