package fraud

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SuspicionType identifies which detector produced a suspicion
type SuspicionType string

const (
	SuspicionTypeSameDevice     SuspicionType = "same_device"
	SuspicionTypeReferralLoop   SuspicionType = "referral_loop"
	SuspicionTypeRapidReferrals SuspicionType = "rapid_referrals"
	SuspicionTypeQuickCancel    SuspicionType = "quick_cancel"
)

// Severity is a totally ordered suspicion level
type Severity string

const (
	SeverityNone     Severity = ""
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the position of the severity in its total order. Unknown values rank as none.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether s is equal to or above other
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}

// Escalate returns the higher of s and to
func (s Severity) Escalate(to Severity) Severity {
	if to.Rank() > s.Rank() {
		return to
	}
	return s
}

// Evidence is the detector-specific payload of a suspicion.
// Each variant belongs to exactly one SuspicionType.
type Evidence interface {
	SuspicionType() SuspicionType
}

// SameDeviceEvidence is attached to same_device suspicions
type SameDeviceEvidence struct {
	FingerprintHash  string      `json:"fingerprint_hash"`
	AccountCount     int         `json:"account_count"`
	AccountIDs       []uuid.UUID `json:"account_ids"`
	PairOnSameDevice bool        `json:"pair_on_same_device"`
}

func (SameDeviceEvidence) SuspicionType() SuspicionType { return SuspicionTypeSameDevice }

// ReferralLoopEvidence is attached to referral_loop suspicions.
// LoopChain runs from the referred account up to the referrer.
type ReferralLoopEvidence struct {
	LoopChain  []uuid.UUID `json:"loop_chain"`
	LoopLength int         `json:"loop_length"`
}

func (ReferralLoopEvidence) SuspicionType() SuspicionType { return SuspicionTypeReferralLoop }

// RapidReferralsEvidence is attached to rapid_referrals suspicions
type RapidReferralsEvidence struct {
	ReferralCount int    `json:"referral_count"`
	Window        string `json:"window"`
	Count24h      int    `json:"count_24h"`
	Count7d       int    `json:"count_7d"`
	Details       string `json:"details"`
}

func (RapidReferralsEvidence) SuspicionType() SuspicionType { return SuspicionTypeRapidReferrals }

// QuickCancelEvidence is attached to quick_cancel suspicions
type QuickCancelEvidence struct {
	CancelCount       int         `json:"cancel_count"`
	QuickCancelDays   int         `json:"quick_cancel_days"`
	CancelledAccounts []uuid.UUID `json:"cancelled_accounts"`
	Details           string      `json:"details"`
}

func (QuickCancelEvidence) SuspicionType() SuspicionType { return SuspicionTypeQuickCancel }

// Suspicion is the common envelope around one piece of evidence
type Suspicion struct {
	Type       SuspicionType
	Severity   Severity
	DetectedAt time.Time
	Evidence   Evidence

	// Set when the shared-IP check corroborates the event
	IPAddress     *string
	IPSignupCount int
}

// NewSuspicion builds a suspicion whose type is taken from the evidence variant
func NewSuspicion(severity Severity, evidence Evidence, detectedAt time.Time) Suspicion {
	return Suspicion{
		Type:       evidence.SuspicionType(),
		Severity:   severity,
		DetectedAt: detectedAt,
		Evidence:   evidence,
	}
}

// EvidencePayload flattens the envelope and the evidence variant into the
// JSON object stored alongside the suspicion.
func (s Suspicion) EvidencePayload() (map[string]interface{}, error) {
	if s.Evidence == nil {
		return nil, fmt.Errorf("suspicion %s has no evidence", s.Type)
	}

	raw, err := json.Marshal(s.Evidence)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s evidence: %w", s.Type, err)
	}

	payload := make(map[string]interface{})
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s evidence: %w", s.Type, err)
	}

	payload["detected_at"] = s.DetectedAt.UTC().Format(time.RFC3339Nano)
	if s.IPAddress != nil {
		payload["ip_address"] = *s.IPAddress
		payload["ip_signup_count"] = s.IPSignupCount
	}
	return payload, nil
}

// CheckParams describes one referral event to check
type CheckParams struct {
	ReferralID        *uuid.UUID
	ReferrerAccountID uuid.UUID
	ReferredAccountID uuid.UUID
	FingerprintHash   *string
	IPAddress         *string
}

// CheckResult is the outcome of a fraud check
type CheckResult struct {
	IsSuspicious bool
	Suspicions   []Suspicion
}

// SameDeviceCheckResult is returned by the device registry
type SameDeviceCheckResult struct {
	IsSuspicious bool
	AccountCount int
	AccountIDs   []uuid.UUID
	Severity     Severity
}

// LoopCheckResult is returned by loop detectors
type LoopCheckResult struct {
	IsLoop        bool
	LoopChain     []uuid.UUID
	LoopLength    int
	DepthExceeded bool
}

// PatternCheckResult is returned by the pattern detector
type PatternCheckResult struct {
	RapidReferrals     bool
	QuickCancellations bool

	ReferralCount  int
	ReferralWindow string
	Count24h       int
	Count7d        int
	RapidSeverity  Severity

	CancelCount       int
	CancelledAccounts []uuid.UUID
	CancelSeverity    Severity

	Details []string
}

// SharedIPCheckResult is returned by the shared-IP check
type SharedIPCheckResult struct {
	IsSuspicious bool
	Count        int
}

// LoopDetector decides whether adding referrer -> referred closes a cycle
type LoopDetector interface {
	DetectLoop(ctx context.Context, referrerID, referredID uuid.UUID, maxDepth int) (LoopCheckResult, error)
}
