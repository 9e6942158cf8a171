// File: services/call/turn.go
package call

import (
	"context"
	"errors"
	"strings"
	"time"

	businessRepo "dialvet/database/repository/business"
	"dialvet/models"
	"dialvet/utils"

	"go.uber.org/zap"
)

// maxEmptyRetries bounds the "didn't catch that" loop: after this many
// consecutive empty transcripts the call is closed with an apology.
const maxEmptyRetries = 2

const (
	greetingScript = "Hello! I'm calling on behalf of a local veterans group. " +
		"Do you offer a military discount for veterans or active duty service members?"
	repromptScript = "Sorry, I didn't catch that. Do you offer a military discount?"
	apologyScript  = "I'm sorry, we're having trouble completing this call. Thank you for your time. Goodbye."
	unknownScript  = "Thank you for your time. Goodbye."
	closingScript  = "Thank you very much for the information. Have a great day!"
)

// HandleTurn is the call-turn state machine. One invocation per inbound
// webhook; all continuity comes from the TurnContext (phone number and
// attempt counter), never from in-process state.
func (s *DefaultCallService) HandleTurn(ctx context.Context, turn models.TurnContext, transcript string) *models.TurnReply {
	logger := utils.GetLogger()
	transcript = strings.TrimSpace(transcript)

	biz, err := s.Repo.GetByPhone(ctx, turn.Phone)
	if err != nil {
		if errors.Is(err, businessRepo.ErrNotFound) {
			logger.Warn("Voice turn for unknown number",
				zap.String("phone", turn.Phone), zap.String("callSid", turn.CallSid))
			return &models.TurnReply{Say: []string{unknownScript}, Hangup: true}
		}
		logger.Error("Failed to look up business for voice turn",
			zap.String("phone", turn.Phone), zap.Error(err))
		return apologyReply()
	}

	if transcript == "" {
		return s.handleEmptyTurn(ctx, turn, biz)
	}
	return s.handleTranscript(ctx, turn, biz, transcript)
}

// handleEmptyTurn covers the first turn (no speech yet) and the bounded
// "please repeat" retry loop when the provider could not transcribe speech.
func (s *DefaultCallService) handleEmptyTurn(ctx context.Context, turn models.TurnContext, biz *models.Business) *models.TurnReply {
	logger := utils.GetLogger()

	if turn.Attempt == 0 {
		// First turn: greet, open a listening window, mark the record
		// in progress. The status write is best effort and independent
		// of the completion update.
		if err := s.Repo.UpdateCallStatus(ctx, biz.ID, models.CallStatusInProgress); err != nil {
			logger.Warn("Failed to mark business in-progress",
				zap.String("businessId", biz.ID), zap.Error(err))
		}

		reply := &models.TurnReply{
			Say:         []string{greetingScript},
			Listen:      true,
			NextAttempt: 1,
		}
		if url := s.Prompts.GreetingURL(ctx); url != "" {
			reply.Say = nil
			reply.PlayURL = url
		}
		return reply
	}

	if turn.Attempt >= maxEmptyRetries {
		logger.Info("Giving up after repeated empty transcripts",
			zap.String("businessId", biz.ID), zap.Int("attempt", turn.Attempt))
		if err := s.Repo.UpdateCallStatus(ctx, biz.ID, models.CallStatusCompleted); err != nil {
			logger.Warn("Failed to mark business completed",
				zap.String("businessId", biz.ID), zap.Error(err))
		}
		return &models.TurnReply{Say: []string{apologyScript}, Hangup: true}
	}

	return &models.TurnReply{
		Say:         []string{repromptScript},
		Listen:      true,
		NextAttempt: turn.Attempt + 1,
	}
}

// handleTranscript classifies the caller's speech and either continues the
// conversation or persists the result and closes the call.
func (s *DefaultCallService) handleTranscript(ctx context.Context, turn models.TurnContext, biz *models.Business, transcript string) *models.TurnReply {
	logger := utils.GetLogger()

	res, err := s.Classifier.Classify(ctx, transcript, turn.Attempt)
	if err != nil {
		logger.Error("Classifier failed for voice turn",
			zap.String("businessId", biz.ID), zap.Error(err))
		return apologyReply()
	}

	if !res.ShouldEndCall {
		return &models.TurnReply{
			Say:         []string{res.NextResponse},
			Listen:      true,
			NextAttempt: 1,
		}
	}

	if err := s.Repo.ApplySurveyResult(ctx, biz.ID, *res, time.Now()); err != nil {
		logger.Error("Failed to persist survey result",
			zap.String("businessId", biz.ID), zap.Error(err))
		return apologyReply()
	}
	logger.Info("Survey completed",
		zap.String("businessId", biz.ID),
		zap.Bool("hasDiscount", res.HasDiscount),
		zap.String("discountAmount", res.DiscountAmount),
		zap.String("endReason", string(res.EndReason)))

	s.archiveRecording(turn, biz)

	closing := strings.TrimSpace(res.NextResponse)
	if closing == "" {
		closing = closingScript
	}
	return &models.TurnReply{Say: []string{closing}, Hangup: true}
}

// archiveRecording queues the recording fetch for a finished call. Best
// effort: the spoken reply never depends on it.
func (s *DefaultCallService) archiveRecording(turn models.TurnContext, biz *models.Business) {
	if s.Archiver == nil || turn.CallSid == "" {
		return
	}
	payload := models.RecordingPayload{CallSid: turn.CallSid, BusinessID: biz.ID}
	if err := s.Archiver.EnqueueArchiveRecording(payload); err != nil {
		utils.GetLogger().Warn("Failed to enqueue recording archive",
			zap.String("callSid", turn.CallSid), zap.Error(err))
	}
}

func apologyReply() *models.TurnReply {
	return &models.TurnReply{Say: []string{apologyScript}, Hangup: true}
}
