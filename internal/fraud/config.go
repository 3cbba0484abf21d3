package fraud

import "time"

// Config holds the detector thresholds. Values are fixed per deployment;
// tests build their own copy instead of mutating package state.
type Config struct {
	// Same-device severity bands, by number of accounts on one fingerprint
	SameDeviceLowMin    int
	SameDeviceMediumMin int
	SameDeviceHighMin   int

	// Loop detection
	MaxLoopDepth int

	// Referral velocity (strictly greater than)
	RapidReferrals24hLimit int
	RapidReferrals7dLimit  int
	RapidHighAbove         int

	// Early cancellations
	QuickCancelDays      int
	QuickCancelThreshold int
	QuickCancelHighAbove int

	// Shared IP (strictly greater than)
	SharedIPLimit     int
	SharedIPEventType string

	// Per-branch budget inside one fraud check
	BranchTimeout time.Duration
}

// DefaultConfig returns the documented thresholds
func DefaultConfig() Config {
	return Config{
		SameDeviceLowMin:    2,
		SameDeviceMediumMin: 3,
		SameDeviceHighMin:   5,

		MaxLoopDepth: 10,

		RapidReferrals24hLimit: 5,
		RapidReferrals7dLimit:  10,
		RapidHighAbove:         10,

		QuickCancelDays:      7,
		QuickCancelThreshold: 2,
		QuickCancelHighAbove: 3,

		SharedIPLimit:     5,
		SharedIPEventType: "registration",

		BranchTimeout: 3 * time.Second,
	}
}

// SameDeviceSeverity maps an account count on one fingerprint to a severity
func (c Config) SameDeviceSeverity(accountCount int) Severity {
	switch {
	case accountCount >= c.SameDeviceHighMin:
		return SeverityHigh
	case accountCount >= c.SameDeviceMediumMin:
		return SeverityMedium
	case accountCount >= c.SameDeviceLowMin:
		return SeverityLow
	default:
		return SeverityNone
	}
}
