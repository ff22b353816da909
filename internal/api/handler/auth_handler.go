package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/auth"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/storage"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
	auth    *auth.Service
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(deps *Dependencies) *AuthHandler {
	return &AuthHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
		auth:    deps.Auth,
	}
}

// Login handles POST /api/v1/auth/login
// A wrong email and a wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	profile, err := h.storage.GetProfileByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid credentials",
			})
			return
		}
		h.logger.Error("Login lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Login failed",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid credentials",
		})
		return
	}

	if !profile.IsActive {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "account disabled",
		})
		return
	}

	token, err := h.auth.GenerateToken(profile.UserID, profile.Email, profile.UserType)
	if err != nil {
		h.logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Login failed",
		})
		return
	}

	h.logger.Info("Login succeeded",
		slog.String("user_id", profile.UserID),
		slog.String("user_type", profile.UserType),
	)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		UserID:   profile.UserID,
		FullName: profile.FullName,
		UserType: profile.UserType,
	})
}
