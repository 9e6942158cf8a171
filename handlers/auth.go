// File: handlers/auth.go
package handlers

import (
	"net/http"
	"time"

	"dialvet/config"
	"dialvet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 24 * time.Hour

// AdminLoginHandler handles POST /api/admin/login. The dashboard is a
// single-operator tool: one configured password, one "admin" subject.
func AdminLoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		logger.Error("Admin login attempted with no ADMIN_PASSWORD_HASH configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin login is not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		logger.Warn("Admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	token, err := utils.GenerateToken("admin", adminTokenTTL)
	if err != nil {
		logger.Error("Failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
