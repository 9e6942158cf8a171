// File: services/telephony/twilio.go
package telephony

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"dialvet/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioClient places calls through the Twilio REST API. Each call fetches
// its spoken instructions from the public voice-turn webhook.
type TwilioClient struct {
	api        *twilio.RestClient
	accountSID string
	authToken  string
	from       string
	voiceURL   string
	record     bool
	httpClient *http.Client
}

// NewTwilioClient builds a client from the loaded application config.
func NewTwilioClient() (*TwilioClient, error) {
	cfg := config.AppConfig
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		return nil, fmt.Errorf("telephony: twilio credentials not set in configuration")
	}
	if cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("telephony: PUBLIC_BASE_URL must be set for voice webhooks")
	}

	api := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return &TwilioClient{
		api:        api,
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		from:       cfg.TwilioFromNumber,
		voiceURL:   cfg.PublicBaseURL + "/api/voice/turn",
		record:     cfg.RecordCalls,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// callParams builds the placement request: the call fetches its first
// instructions from the voice webhook with a fresh attempt counter.
func (t *TwilioClient) callParams(to string) *twilioApi.CreateCallParams {
	params := &twilioApi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetUrl(t.voiceURL + "?attempt=0")
	params.SetMethod("POST")
	if t.record {
		params.SetRecord(true)
	}
	return params
}

// PlaceCall initiates one outbound call and returns the call SID.
func (t *TwilioClient) PlaceCall(ctx context.Context, to string) (string, error) {
	resp, err := t.api.Api.CreateCall(t.callParams(to))
	if err != nil {
		return "", fmt.Errorf("telephony: create call to %s: %w", to, err)
	}
	if resp.Sid == nil {
		return "", fmt.Errorf("telephony: create call to %s: no SID returned", to)
	}
	return *resp.Sid, nil
}

// FetchRecording downloads the first recording of the call as MP3.
func (t *TwilioClient) FetchRecording(ctx context.Context, callSid string) (string, error) {
	listParams := &twilioApi.ListRecordingParams{}
	listParams.SetCallSid(callSid)
	recordings, err := t.api.Api.ListRecording(listParams)
	if err != nil {
		return "", fmt.Errorf("telephony: list recordings for %s: %w", callSid, err)
	}
	if len(recordings) == 0 || recordings[0].Sid == nil {
		return "", fmt.Errorf("telephony: no recording found for call %s", callSid)
	}

	mediaURL := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Recordings/%s.mp3",
		t.accountSID, *recordings[0].Sid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return "", fmt.Errorf("telephony: build recording request: %w", err)
	}
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("telephony: download recording %s: %w", *recordings[0].Sid, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("telephony: download recording %s: status %d", *recordings[0].Sid, resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "recording-*.mp3")
	if err != nil {
		return "", fmt.Errorf("telephony: create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("telephony: save recording: %w", err)
	}
	return tmp.Name(), nil
}

var _ Client = (*TwilioClient)(nil)
