package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jobdeck/admin-be/internal/api/dto"
	"github.com/jobdeck/admin-be/internal/api/model"
	"github.com/jobdeck/admin-be/internal/api/storage"
)

// PackageHandler handles credit package pricing HTTP requests
type PackageHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
}

// NewPackageHandler creates a new PackageHandler instance
func NewPackageHandler(deps *Dependencies) *PackageHandler {
	return &PackageHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
	}
}

// ListPackages handles GET /api/v1/admin/packages
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.storage.ListPackages(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list packages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list packages",
		})
		return
	}

	rows := make([]dto.PackageDTO, len(packages))
	for i := range packages {
		rows[i] = dto.FromPackage(&packages[i])
	}

	c.JSON(http.StatusOK, gin.H{"packages": rows})
}

// CreatePackage handles POST /api/v1/admin/packages
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	pkg := model.CreditPackage{
		PackageID:    uuid.New().String(),
		Name:         req.Name,
		Credits:      req.Credits,
		Price:        req.Price,
		Currency:     currency,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now(),
	}

	if err := h.storage.CreatePackage(c.Request.Context(), &pkg); err != nil {
		h.logger.Error("Failed to create package", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create package",
		})
		return
	}

	h.logger.Info("Credit package created",
		slog.String("package_id", pkg.PackageID),
		slog.String("name", pkg.Name),
		slog.String("admin_id", adminID(c)),
	)

	c.JSON(http.StatusOK, dto.FromPackage(&pkg))
}

// UpdatePackage handles PUT /api/v1/admin/packages/:package_id
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	packageID := c.Param("package_id")

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	err := h.storage.UpdatePackage(c.Request.Context(), packageID, req.Name, req.Credits, req.Price)
	if err != nil {
		respondDomainError(c, h.logger, err, "Failed to update package")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package_id": packageID,
		"name":       req.Name,
		"credits":    req.Credits,
		"price":      req.Price,
	})
}

// SetPackageActive handles PUT /api/v1/admin/packages/:package_id/active
func (h *PackageHandler) SetPackageActive(c *gin.Context) {
	packageID := c.Param("package_id")

	var req dto.SetPackageActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := h.storage.SetPackageActive(c.Request.Context(), packageID, req.IsActive); err != nil {
		respondDomainError(c, h.logger, err, "Failed to update package")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"package_id": packageID,
		"is_active":  req.IsActive,
	})
}
