// File: handlers/voice.go
package handlers

import (
	"net/http"
	"strconv"

	"dialvet/models"
	"dialvet/services/call"
	"dialvet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VoiceHandler serves the telephony provider's per-turn webhooks.
type VoiceHandler struct {
	CallSvc call.CallService
}

func NewVoiceHandler(callSvc call.CallService) *VoiceHandler {
	return &VoiceHandler{CallSvc: callSvc}
}

// VoiceTurnHandler handles POST /api/voice/turn. Twilio posts form-encoded
// turn data (SpeechResult is absent on the very first turn); the retry
// counter rides in the attempt query parameter we set on the previous
// turn's Gather action. The response body is always a TwiML document.
func (h *VoiceHandler) VoiceTurnHandler(c *gin.Context) {
	logger := utils.GetLogger()

	attempt, err := strconv.Atoi(c.DefaultQuery("attempt", "0"))
	if err != nil || attempt < 0 {
		attempt = 0
	}

	phone := c.PostForm("To")
	if phone == "" {
		phone = c.PostForm("Called")
	}

	turn := models.TurnContext{
		Phone:   utils.NormalizePhone(phone),
		CallSid: c.PostForm("CallSid"),
		Attempt: attempt,
	}
	transcript := c.PostForm("SpeechResult")

	reply := h.CallSvc.HandleTurn(c.Request.Context(), turn, transcript)

	doc, err := renderTwiML(reply)
	if err != nil {
		logger.Error("Failed to render voice response", zap.Error(err))
		doc = apologyTwiML
	}

	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, doc)
}
