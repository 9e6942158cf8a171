// File: services/classifier/gemini.go
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dialvet/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClassifier delegates transcript interpretation to Gemini with a
// fixed JSON output schema. One request per turn; any network, parse, or
// schema failure is returned to the caller as an error.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey string) (*GeminiClassifier, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("classifier: failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.GenerationConfig.ResponseMIMEType = "application/json"
	return &GeminiClassifier{model: model}, nil
}

const surveySystemPrompt = `You are making a phone call to a business to ask whether they offer a military discount.
Conversation profile:
- On the first turn, introduce yourself once and ask the question.
- On later turns, ask the fixed discount question if still unanswered.
- If a percentage or amount is stated, confirm it.
- Close politely once you have the answer.

Respond with JSON only, exactly this shape:
{"hasDiscount": bool, "discountAmount": "15%" or "", "discountDetails": "...", "availabilityInfo": "...", "eligibilityInfo": "...", "nextResponse": "what to say next", "shouldEndCall": bool, "endReason": one of "got_complete_info","no_discount_confirmed","not_interested","max_attempts_reached","unclear_response","continue"}`

// geminiSurveyReply mirrors the fixed response schema.
type geminiSurveyReply struct {
	HasDiscount      bool   `json:"hasDiscount"`
	DiscountAmount   string `json:"discountAmount"`
	DiscountDetails  string `json:"discountDetails"`
	AvailabilityInfo string `json:"availabilityInfo"`
	EligibilityInfo  string `json:"eligibilityInfo"`
	NextResponse     string `json:"nextResponse"`
	ShouldEndCall    bool   `json:"shouldEndCall"`
	EndReason        string `json:"endReason"`
}

func (g *GeminiClassifier) Classify(ctx context.Context, transcript string, turn int) (*models.SurveyResult, error) {
	prompt := fmt.Sprintf("%s\n\nTurn number: %d\nThe business just said: %q", surveySystemPrompt, turn, transcript)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("classifier: gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("classifier: gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return parseSurveyReply(sb.String())
}

// parseSurveyReply decodes the model's JSON into the shared output contract,
// enforcing the closed endReason set and a next response on continuing turns.
func parseSurveyReply(raw string) (*models.SurveyResult, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var reply geminiSurveyReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("classifier: parsing gemini response: %w (response: %s)", err, raw)
	}

	reason := models.EndReason(reply.EndReason)
	if reply.EndReason != "" && !reason.Valid() {
		return nil, fmt.Errorf("classifier: gemini returned unknown endReason %q", reply.EndReason)
	}
	if !reply.ShouldEndCall && strings.TrimSpace(reply.NextResponse) == "" {
		return nil, fmt.Errorf("classifier: gemini response missing nextResponse on a continuing turn")
	}

	return &models.SurveyResult{
		HasDiscount:      reply.HasDiscount,
		DiscountAmount:   reply.DiscountAmount,
		DiscountDetails:  reply.DiscountDetails,
		AvailabilityInfo: reply.AvailabilityInfo,
		EligibilityInfo:  reply.EligibilityInfo,
		NextResponse:     reply.NextResponse,
		ShouldEndCall:    reply.ShouldEndCall,
		EndReason:        reason,
	}, nil
}

var _ Classifier = (*GeminiClassifier)(nil)
