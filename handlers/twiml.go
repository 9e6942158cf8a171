// File: handlers/twiml.go
package handlers

import (
	"fmt"

	"dialvet/models"

	"github.com/twilio/twilio-go/twiml"
)

// speechTimeoutSeconds is how long the provider waits for silence before
// giving up on the listening window.
const speechTimeoutSeconds = "5"

// apologyTwiML is the last-resort response when even rendering fails. The
// caller must never be left on an open line without instructions.
const apologyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response><Say>I'm sorry, we're having trouble completing this call. Goodbye.</Say><Hangup/></Response>`

// renderTwiML turns an orchestrator reply into the provider's voice
// instruction document. When the reply keeps listening, the spoken parts
// nest inside the Gather so the callee can barge in; the Gather action URL
// carries the retry counter for the next turn.
func renderTwiML(reply *models.TurnReply) (string, error) {
	var spoken []twiml.Element
	if reply.PlayURL != "" {
		spoken = append(spoken, &twiml.VoicePlay{Url: reply.PlayURL})
	}
	for _, msg := range reply.Say {
		spoken = append(spoken, &twiml.VoiceSay{Message: msg})
	}

	var verbs []twiml.Element
	if reply.Listen {
		verbs = append(verbs, &twiml.VoiceGather{
			Input:               "speech",
			Action:              fmt.Sprintf("/api/voice/turn?attempt=%d", reply.NextAttempt),
			Method:              "POST",
			SpeechTimeout:       speechTimeoutSeconds,
			ActionOnEmptyResult: "true",
			InnerElements:       spoken,
		})
	} else {
		verbs = append(verbs, spoken...)
	}
	if reply.Hangup {
		verbs = append(verbs, &twiml.VoiceHangup{})
	}

	return twiml.Voice(verbs)
}
