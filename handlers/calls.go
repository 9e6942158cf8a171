// File: handlers/calls.go
package handlers

import (
	"errors"
	"net/http"

	businessRepo "dialvet/database/repository/business"
	"dialvet/services/call"
	"dialvet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CallTriggerHandler starts outbound survey calls.
type CallTriggerHandler struct {
	CallSvc call.CallService
}

func NewCallTriggerHandler(callSvc call.CallService) *CallTriggerHandler {
	return &CallTriggerHandler{CallSvc: callSvc}
}

// StartBulkCallsHandler handles POST /api/calls. It blocks until every
// placement has settled and reports the tally; the conversations themselves
// finish later through the voice webhook.
func (h *CallTriggerHandler) StartBulkCallsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	summary, err := h.CallSvc.CallAll(c.Request.Context())
	if err != nil {
		logger.Error("Bulk call batch failed to start", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CallBusinessHandler handles POST /api/calls/:id for a single business.
func (h *CallTriggerHandler) CallBusinessHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.CallSvc.CallBusiness(c.Request.Context(), id); err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
			return
		}
		logger.Error("Call placement failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "call placed"})
}
