// File: services/telephony/twilio_test.go
package telephony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dialvet/config"
)

func configureTwilio(t *testing.T, record bool) {
	t.Helper()
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	config.AppConfig.TwilioAccountSID = "AC0000000000000000000000000000test"
	config.AppConfig.TwilioAuthToken = "token"
	config.AppConfig.TwilioFromNumber = "+15550001111"
	config.AppConfig.PublicBaseURL = "https://dialvet.example.com"
	config.AppConfig.RecordCalls = record
}

func TestNewTwilioClientRequiresCredentials(t *testing.T) {
	configureTwilio(t, false)
	config.AppConfig.TwilioAuthToken = ""

	_, err := NewTwilioClient()
	assert.Error(t, err)
}

func TestNewTwilioClientRequiresPublicBaseURL(t *testing.T) {
	configureTwilio(t, false)
	config.AppConfig.PublicBaseURL = ""

	_, err := NewTwilioClient()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUBLIC_BASE_URL")
}

func TestCallParams(t *testing.T) {
	configureTwilio(t, false)
	client, err := NewTwilioClient()
	require.NoError(t, err)

	params := client.callParams("+15551234567")
	require.NotNil(t, params.To)
	assert.Equal(t, "+15551234567", *params.To)
	require.NotNil(t, params.From)
	assert.Equal(t, "+15550001111", *params.From)
	require.NotNil(t, params.Url)
	assert.Equal(t, "https://dialvet.example.com/api/voice/turn?attempt=0", *params.Url)
	require.NotNil(t, params.Method)
	assert.Equal(t, "POST", *params.Method)
	assert.Nil(t, params.Record)
}

func TestCallParamsWithRecordingEnabled(t *testing.T) {
	configureTwilio(t, true)
	client, err := NewTwilioClient()
	require.NoError(t, err)

	params := client.callParams("+15551234567")
	require.NotNil(t, params.Record)
	assert.True(t, *params.Record)
}
