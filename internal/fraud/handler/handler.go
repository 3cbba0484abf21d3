package handler

import (
	"net/http"
	"time"

	"referral-guard/internal/apierrors"
	"referral-guard/internal/fraud/consumer"
	"referral-guard/internal/observability"
	"referral-guard/internal/workers"

	"github.com/gin-gonic/gin"
)

// Dispatcher queues an event for asynchronous processing without blocking
type Dispatcher interface {
	TrySubmit(event workers.EventMessage) error
}

type Handler struct {
	dispatcher Dispatcher
	logger     *observability.Logger
	now        func() time.Time
}

func New(dispatcher Dispatcher, logger *observability.Logger) Handler {
	return Handler{
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

type CreateFraudCheckResponse struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}

// HandleCreateFraudCheck handles POST /internal/fraud-checks
func (h *Handler) HandleCreateFraudCheck(c *gin.Context) {
	ctx := c.Request.Context()

	var req consumer.ReferralCreatedPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	event := consumer.NewReferralCreatedEvent(req, h.now())
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "referrer_account_id", Value: req.ReferrerAccountID},
		observability.Field{Key: "referred_account_id", Value: req.ReferredAccountID},
	)

	if err := h.dispatcher.TrySubmit(event); err != nil {
		h.logger.Error(ctx, "failed to queue fraud check", err)
		apierrors.RespondWithError(c, err)
		return
	}

	h.logger.Info(ctx, "queued fraud check")
	c.JSON(http.StatusAccepted, CreateFraudCheckResponse{
		EventID: event.ID,
		Status:  "accepted",
	})
}
