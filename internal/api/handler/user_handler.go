package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(deps *Dependencies) *UserHandler {
	return &UserHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// ListUsers handles GET /api/v1/admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	if req.UserType != "" && !domain.IsValidUserType(req.UserType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown user_type",
		})
		return
	}

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Limit > 200 {
		req.Limit = 200
	}

	profiles, err := h.storage.ListUsers(c.Request.Context(), req.Query, req.UserType, req.Limit)
	if err != nil {
		h.logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list users",
		})
		return
	}

	users := make([]dto.UserDTO, len(profiles))
	for i := range profiles {
		users[i] = dto.FromProfile(&profiles[i])
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser handles GET /api/v1/admin/users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.storage.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, dto.FromProfile(profile))
}

// SetUserActive handles PUT /api/v1/admin/users/:user_id/active
func (h *UserHandler) SetUserActive(c *gin.Context) {
	var req dto.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	userID := c.Param("user_id")
	if err := h.storage.SetUserActive(c.Request.Context(), userID, req.IsActive); err != nil {
		respondDomainError(c, h.logger, err, "Failed to update user")
		return
	}

	h.logger.Info("User active flag updated",
		slog.String("user_id", userID),
		slog.Bool("is_active", req.IsActive),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, gin.H{
		"user_id":   userID,
		"is_active": req.IsActive,
	})
}

// ListServiceAccess handles GET /api/v1/admin/services
// Returns every per-user service switch, for the services admin page.
func (h *UserHandler) ListServiceAccess(c *gin.Context) {
	access, err := h.storage.ListServiceAccess(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list service access", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list service access",
		})
		return
	}

	rows := make([]dto.ServiceAccessDTO, len(access))
	for i := range access {
		rows[i] = dto.FromServiceAccess(&access[i])
	}

	c.JSON(http.StatusOK, gin.H{"services": rows})
}

// ToggleService handles POST /api/v1/admin/services/toggle
func (h *UserHandler) ToggleService(c *gin.Context) {
	var req dto.ToggleServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if !domain.IsKnownService(req.ServiceCode) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown service_code",
		})
		return
	}

	err := h.storage.ToggleServiceAccess(c.Request.Context(), adminID(c), req.UserID, req.ServiceCode, req.IsActive, req.Notes, time.Now())
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to toggle service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      req.UserID,
		"service_code": req.ServiceCode,
		"is_active":    req.IsActive,
	})
}

// GrantServices handles POST /api/v1/admin/services/grant
// Enables several services for one user in a single transaction, with a
// shared optional expiry.
func (h *UserHandler) GrantServices(c *gin.Context) {
	var req dto.GrantServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	for _, code := range req.ServiceCodes {
		if !domain.IsKnownService(code) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "unknown service_code: " + code,
			})
			return
		}
	}

	err := h.storage.GrantServices(c.Request.Context(), adminID(c), req.UserID, req.ServiceCodes, req.ExpiresAt, req.Notes, time.Now())
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to grant services")
		return
	}

	h.logger.Info("Services granted",
		slog.String("user_id", req.UserID),
		slog.Int("count", len(req.ServiceCodes)),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, gin.H{
		"user_id":  req.UserID,
		"services": req.ServiceCodes,
	})
}
