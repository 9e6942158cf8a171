// File: models/call.go
package models

// TurnContext is the serializable continuity for one voice-call turn. Each
// webhook invocation is stateless; everything needed to resume the
// conversation travels in here (the phone number correlates the record, the
// attempt counter rides in the Gather action URL).
type TurnContext struct {
	Phone   string `json:"phone"`
	CallSid string `json:"callSid"`
	Attempt int    `json:"attempt"`
}

// TurnReply is what the orchestrator wants spoken (or played) next and
// whether the provider should keep listening. Handlers render it into the
// provider's instruction markup.
type TurnReply struct {
	Say         []string `json:"say"`
	PlayURL     string   `json:"playUrl,omitempty"`
	Listen      bool     `json:"listen"`
	NextAttempt int      `json:"nextAttempt"`
	Hangup      bool     `json:"hangup"`
}

// EndReason is the closed set of reasons the reasoning classifier may give
// for ending a call.
type EndReason string

const (
	EndReasonGotCompleteInfo     EndReason = "got_complete_info"
	EndReasonNoDiscountConfirmed EndReason = "no_discount_confirmed"
	EndReasonNotInterested       EndReason = "not_interested"
	EndReasonMaxAttempts         EndReason = "max_attempts_reached"
	EndReasonUnclearResponse     EndReason = "unclear_response"
	EndReasonContinue            EndReason = "continue"
)

// Valid reports whether the reason belongs to the closed set.
func (r EndReason) Valid() bool {
	switch r {
	case EndReasonGotCompleteInfo, EndReasonNoDiscountConfirmed,
		EndReasonNotInterested, EndReasonMaxAttempts,
		EndReasonUnclearResponse, EndReasonContinue:
		return true
	}
	return false
}

// SurveyResult is the classifier output contract shared by both strategies.
type SurveyResult struct {
	HasDiscount      bool      `json:"hasDiscount"`
	DiscountAmount   string    `json:"discountAmount,omitempty"`
	DiscountDetails  string    `json:"discountDetails"`
	AvailabilityInfo string    `json:"availabilityInfo,omitempty"`
	EligibilityInfo  string    `json:"eligibilityInfo,omitempty"`
	NextResponse     string    `json:"nextResponse,omitempty"`
	ShouldEndCall    bool      `json:"shouldEndCall"`
	EndReason        EndReason `json:"endReason,omitempty"`
}

// BulkCallSummary tallies outbound call placements. A placement is the act
// of initiating the call; the conversation itself completes later via
// webhooks.
type BulkCallSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// RecordingPayload is the queue payload for archiving a call recording.
type RecordingPayload struct {
	CallSid    string `json:"callSid"`
	BusinessID string `json:"businessId"`
}
