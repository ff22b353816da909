package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/shell"
)

// ShellHandler handles admin shell HTTP requests: the navigation menu,
// breadcrumb resolution and per-admin UI preferences.
type ShellHandler struct {
	logger *slog.Logger
	prefs  *shell.PrefStore
}

// NewShellHandler creates a new ShellHandler instance
func NewShellHandler(deps *Dependencies) *ShellHandler {
	return &ShellHandler{
		logger: deps.Logger,
		prefs:  deps.Prefs,
	}
}

// GetMenu handles GET /api/v1/admin/shell/menu
func (h *ShellHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": shell.DefaultMenu()})
}

// GetBreadcrumbs handles GET /api/v1/admin/shell/breadcrumbs
// Resolves the active route into its breadcrumb trail plus the menu ids
// that must be expanded to reveal it.
func (h *ShellHandler) GetBreadcrumbs(c *gin.Context) {
	route := c.Query("route")
	if route == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "route is required",
		})
		return
	}

	trail := shell.FindBreadcrumbs(shell.DefaultMenu(), route)
	if trail == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown route",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trail":        trail,
		"parent_route": shell.ParentRoute(trail),
		"expand_ids":   shell.AncestorIDs(trail),
	})
}

// GetPreferences handles GET /api/v1/admin/shell/preferences
func (h *ShellHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.prefs.Load(c.Request.Context(), adminID(c))
	if err != nil {
		h.logger.Error("Failed to load shell preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load preferences",
		})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// SavePreferences handles PUT /api/v1/admin/shell/preferences
func (h *ShellHandler) SavePreferences(c *gin.Context) {
	var prefs shell.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := h.prefs.Save(c.Request.Context(), adminID(c), &prefs); err != nil {
		h.logger.Error("Failed to save shell preferences", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save preferences",
		})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
