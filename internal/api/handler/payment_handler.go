package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// PaymentHandler handles payment review HTTP requests
type PaymentHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(deps *Dependencies) *PaymentHandler {
	return &PaymentHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// ListPendingPayments handles GET /api/v1/admin/payments/pending
// Grouped by payment type, oldest first within each group.
func (h *PaymentHandler) ListPendingPayments(c *gin.Context) {
	payments, err := h.storage.ListPendingPayments(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list pending payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list pending payments",
		})
		return
	}

	rows := make([]dto.PaymentDTO, len(payments))
	for i := range payments {
		rows[i] = dto.FromPayment(&payments[i])
	}

	c.JSON(http.StatusOK, gin.H{"payments": rows})
}

// GetPayment handles GET /api/v1/admin/payments/:payment_id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.storage.GetPayment(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to get payment")
		return
	}

	c.JSON(http.StatusOK, dto.FromPayment(payment))
}

// ApprovePayment handles POST /api/v1/admin/payments/:payment_id/approve
// For credit purchases the bought credits are applied to the user's
// balance in the same transaction as the status change.
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	var req dto.ReviewPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	payment, err := h.storage.ApprovePayment(c.Request.Context(), paymentID, adminID(c), req.Notes, time.Now())
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to approve payment")
		return
	}

	h.logger.Info("Payment approved",
		slog.String("payment_id", paymentID),
		slog.String("payment_type", payment.PaymentType),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, dto.FromPayment(payment))
}

// RejectPayment handles POST /api/v1/admin/payments/:payment_id/reject
func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	var req dto.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := h.storage.RejectPayment(c.Request.Context(), paymentID, adminID(c), req.Reason, time.Now()); err != nil {
		respondDomainError(c, h.logger, err, "Failed to reject payment")
		return
	}

	h.logger.Info("Payment rejected",
		slog.String("payment_id", paymentID),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, gin.H{
		"payment_id": paymentID,
		"status":     "rejected",
	})
}
