// File: services/telephony/interface.go
package telephony

import "context"

// Client is the outbound surface of the telephony provider. A placement is
// the act of initiating a call; the conversation itself arrives later as
// webhooks against the voice-turn endpoint.
type Client interface {
	// PlaceCall initiates an outbound call to the canonical phone number
	// and returns the provider's call identifier.
	PlaceCall(ctx context.Context, to string) (string, error)
	// FetchRecording downloads the recording media for a completed call
	// into a temp file and returns its path. The caller owns cleanup.
	FetchRecording(ctx context.Context, callSid string) (string, error)
}
