package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/auth"
	"github.com/jobdeck/admin-be/internal/api/domain"
	"github.com/jobdeck/admin-be/internal/api/moderation"
	"github.com/jobdeck/admin-be/internal/api/shell"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger     *slog.Logger
	Storage    *storage.Storage
	Moderation *moderation.Service
	Auth       *auth.Service
	Prefs      *shell.PrefStore
}

// respondDomainError maps a domain error onto an HTTP status. Unknown
// errors are logged and surfaced as a 500 with a generic message so SQL
// details never leak to the client.
func respondDomainError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrJobNotFound), errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrInsufficientCredit):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrReasonRequired), errors.Is(err, domain.ErrInvalidValidity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// adminID returns the authenticated admin's user id set by the auth
// middleware.
func adminID(c *gin.Context) string {
	return c.GetString("user_id")
}
