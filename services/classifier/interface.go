// File: services/classifier/interface.go
package classifier

import (
	"context"
	"fmt"

	"dialvet/models"
)

// Classifier turns the transcript of one call turn into structured discount
// fields plus a continue/end decision. Implementations must return an error
// rather than a silent default when they cannot produce a result; the
// call-turn orchestrator treats that as a hard failure for the turn.
type Classifier interface {
	Classify(ctx context.Context, transcript string, turn int) (*models.SurveyResult, error)
}

// New selects a classifier strategy by name. "pattern" is the stateless
// regex heuristic; "gemini" delegates to the structured-output reasoning
// service.
func New(strategy, geminiAPIKey string) (Classifier, error) {
	switch strategy {
	case "", "pattern":
		return NewPatternClassifier(), nil
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("classifier: gemini strategy requires an API key")
		}
		return NewGeminiClassifier(geminiAPIKey)
	default:
		return nil, fmt.Errorf("classifier: unknown strategy %q", strategy)
	}
}
