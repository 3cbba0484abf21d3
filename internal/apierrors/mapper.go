package apierrors

import (
	"errors"

	"referral-guard/internal/fraud"
	"referral-guard/internal/store"
	"referral-guard/internal/workers"
)

// MapError converts domain errors to APIErrors. Unknown errors become a
// sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, workers.ErrQueueFull):
		return ServiceUnavailable(CodeQueueFull, "Fraud check queue is full. The check was skipped.", err)

	case errors.Is(err, fraud.ErrStorage):
		return ServiceUnavailable(CodeStorageUnavailable, "Storage is temporarily unavailable. Please try again later.", err)

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return InternalError(err)
	}
}
