// File: handlers/assets.go
package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"dialvet/services/storage"
	"dialvet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxPromptAudioSize = 10 * 1024 * 1024 // 10MB

// AssetHandler manages the hosted greeting audio played on the first turn
// of every call (instead of synthesized speech).
type AssetHandler struct {
	Prompts *storage.PromptStore
}

func NewAssetHandler(prompts *storage.PromptStore) *AssetHandler {
	return &AssetHandler{Prompts: prompts}
}

// UploadGreetingHandler handles POST /api/assets/greeting with a multipart
// audio file.
func (h *AssetHandler) UploadGreetingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	// The prompt store is only wired when object storage is configured.
	if h.Prompts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "asset storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required", "details": err.Error()})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".mp3" && ext != ".wav" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected an .mp3 or .wav file"})
		return
	}

	tmp, err := os.CreateTemp("", "greeting-*"+ext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create temp file", "details": err.Error()})
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, io.LimitReader(file, maxPromptAudioSize)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save audio file", "details": err.Error()})
		return
	}

	url, err := h.Prompts.SetGreeting(c.Request.Context(), tmp.Name())
	if err != nil {
		logger.Error("Failed to store greeting audio", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GetGreetingHandler handles GET /api/assets/greeting.
func (h *AssetHandler) GetGreetingHandler(c *gin.Context) {
	url := h.Prompts.GreetingURL(c.Request.Context())
	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no greeting audio configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
