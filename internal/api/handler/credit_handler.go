package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// CreditHandler handles credit administration HTTP requests
type CreditHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewCreditHandler creates a new CreditHandler instance
func NewCreditHandler(deps *Dependencies) *CreditHandler {
	return &CreditHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// AdjustCredits handles POST /api/v1/admin/credits/adjust
// Applies a signed balance change and records the matching transaction. A
// debit below zero is refused, not clamped.
func (h *CreditHandler) AdjustCredits(c *gin.Context) {
	var req dto.AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	tx, err := h.storage.AdjustCredits(c.Request.Context(), req.UserID, req.Amount, req.Note, time.Now())
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to adjust credits")
		return
	}

	h.logger.Info("Credits adjusted",
		slog.String("user_id", req.UserID),
		slog.Int("amount", req.Amount),
		slog.Int("balance_after", tx.BalanceAfter),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, dto.FromTransaction(tx))
}

// ListTransactions handles GET /api/v1/admin/credits/transactions
func (h *CreditHandler) ListTransactions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	transactions, err := h.storage.ListTransactions(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list transactions",
		})
		return
	}

	rows := make([]dto.TransactionDTO, len(transactions))
	for i := range transactions {
		rows[i] = dto.FromTransaction(&transactions[i])
	}

	c.JSON(http.StatusOK, gin.H{"transactions": rows})
}

// CreditsSummary handles GET /api/v1/admin/credits/summary
func (h *CreditHandler) CreditsSummary(c *gin.Context) {
	summary, err := h.storage.CreditsSummary(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute credits summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute credits summary",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
