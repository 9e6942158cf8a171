// File: handlers/business.go
package handlers

import (
	"errors"
	"net/http"

	businessRepo "dialvet/database/repository/business"
	"dialvet/models"
	"dialvet/services/business"
	"dialvet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler exposes the record CRUD surface to the dashboard.
type BusinessHandler struct {
	Svc business.BusinessService
}

func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Svc: svc}
}

// ListBusinessesHandler handles GET /api/businesses.
func (h *BusinessHandler) ListBusinessesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	bizs, err := h.Svc.ListBusinesses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list businesses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bizs)
}

// GetBusinessHandler handles GET /api/businesses/:id.
func (h *BusinessHandler) GetBusinessHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	biz, err := h.Svc.GetBusiness(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
			return
		}
		logger.Error("Failed to fetch business", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// ImportBusinessesHandler handles POST /api/businesses/import with a
// multipart CSV file of "name,phone" rows. Row validation errors come back
// in the summary; they never fail the request.
func (h *BusinessHandler) ImportBusinessesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "csv file is required", "details": err.Error()})
		return
	}
	defer file.Close()

	summary, err := h.Svc.ImportCSV(c.Request.Context(), file)
	if err != nil {
		logger.Error("CSV import failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportBusinessesHandler handles GET /api/businesses/export.
func (h *BusinessHandler) ExportBusinessesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="businesses.csv"`)
	if err := h.Svc.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		logger.Error("CSV export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}

// UpdateBusinessHandler handles PATCH /api/businesses/:id.
func (h *BusinessHandler) UpdateBusinessHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var upd models.BusinessUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		logger.Error("Invalid business update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	biz, err := h.Svc.UpdateBusiness(c.Request.Context(), id, upd)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
			return
		}
		logger.Error("Failed to update business", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// ClearBusinessesHandler handles DELETE /api/businesses.
func (h *BusinessHandler) ClearBusinessesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	deleted, err := h.Svc.ClearAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to clear businesses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
