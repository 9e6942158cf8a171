// File: services/call/interface.go
package call

import (
	"context"

	businessRepo "dialvet/database/repository/business"
	"dialvet/models"
	"dialvet/services/classifier"
	"dialvet/services/storage"
	"dialvet/services/tasks"
	"dialvet/services/telephony"
)

// CallService drives the outbound survey calls: the per-webhook turn
// protocol and the bulk placement batch.
type CallService interface {
	// HandleTurn processes one webhook invocation of an active call. It
	// always returns usable spoken instructions: internal failures degrade
	// to an apology and a hangup, never a dead line.
	HandleTurn(ctx context.Context, turn models.TurnContext, transcript string) *models.TurnReply

	// CallAll places one outbound call per business record and reports
	// placement counts once every placement has settled.
	CallAll(ctx context.Context) (*models.BulkCallSummary, error)

	// CallBusiness places a single outbound call.
	CallBusiness(ctx context.Context, id string) error
}

// DefaultCallService is the production implementation.
type DefaultCallService struct {
	Repo       businessRepo.BusinessRepository
	Classifier classifier.Classifier
	Telephony  telephony.Client
	Prompts    *storage.PromptStore // optional: hosted greeting audio
	Archiver   tasks.Enqueuer       // optional: recording archive queue
}
