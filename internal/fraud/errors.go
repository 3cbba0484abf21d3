package fraud

import "errors"

var (
	// ErrStorage wraps any failure reaching the persistence layer
	ErrStorage = errors.New("storage error")

	// ErrGraphQuery wraps a failure of the recursive referral-chain query
	ErrGraphQuery = errors.New("referral graph query failed")
)
