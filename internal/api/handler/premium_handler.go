package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// PremiumHandler handles premium subscription HTTP requests
type PremiumHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewPremiumHandler creates a new PremiumHandler instance
func NewPremiumHandler(deps *Dependencies) *PremiumHandler {
	return &PremiumHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// ListSubscriptions handles GET /api/v1/admin/premium
func (h *PremiumHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.storage.ListSubscriptions(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.logger.Error("Failed to list subscriptions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list subscriptions",
		})
		return
	}

	rows := make([]dto.SubscriptionDTO, len(subs))
	for i := range subs {
		rows[i] = dto.FromSubscription(&subs[i])
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": rows})
}

// ActivateSubscription handles POST /api/v1/admin/premium/activate
func (h *PremiumHandler) ActivateSubscription(c *gin.Context) {
	var req dto.ActivateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if req.DurationDays < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "duration_days must not be negative",
		})
		return
	}

	sub, err := h.storage.ActivateSubscription(c.Request.Context(), req.UserID, req.PlanCode, req.DurationDays, time.Now())
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to activate subscription")
		return
	}

	h.logger.Info("Premium subscription activated",
		slog.String("user_id", req.UserID),
		slog.String("plan_code", req.PlanCode),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, dto.FromSubscription(sub))
}

// CancelSubscription handles POST /api/v1/admin/premium/:subscription_id/cancel
func (h *PremiumHandler) CancelSubscription(c *gin.Context) {
	subscriptionID := c.Param("subscription_id")

	if err := h.storage.CancelSubscription(c.Request.Context(), subscriptionID, time.Now()); err != nil {
		respondDomainError(c, h.logger, err, "Failed to cancel subscription")
		return
	}

	h.logger.Info("Premium subscription cancelled",
		slog.String("subscription_id", subscriptionID),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, gin.H{
		"subscription_id": subscriptionID,
		"status":          "cancelled",
	})
}
