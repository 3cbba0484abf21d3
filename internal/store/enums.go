package store

// Suspicious Referral ENUMs
const (
	SuspiciousReferralStatusPending        = "pending"
	SuspiciousReferralStatusReviewing      = "reviewing"
	SuspiciousReferralStatusConfirmedFraud = "confirmed_fraud"
	SuspiciousReferralStatusFalsePositive  = "false_positive"
	SuspiciousReferralStatusDismissed      = "dismissed"
)

// Subscription ENUMs
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusCanceled = "canceled"
)

// Tracking Event ENUMs
const (
	TrackingEventTypeRegistration = "registration"
	TrackingEventTypeLogin        = "login"
)
