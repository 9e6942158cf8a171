// File: services/classifier/pattern.go
package classifier

import (
	"context"
	"regexp"
	"strings"

	"dialvet/models"
)

// PatternClassifier is the stateless token-scan strategy. It makes no
// external calls and always ends the call after the first transcript.
//
// The affirmative/negative detection is a simple token scan; transcripts
// with complex negation ("we used to but don't anymore") will be
// misclassified. Accepted heuristic limitation.
type PatternClassifier struct{}

func NewPatternClassifier() *PatternClassifier {
	return &PatternClassifier{}
}

var affirmativeTokens = []string{
	"yes", "yeah", "we do", "correct", "offer", "have", "gives", "provides",
}

// negatedRe matches a negation token within a few words of a discount verb,
// e.g. "no we don't offer that".
var negatedRe = regexp.MustCompile(`\b(?:no|not|don'?t|doesn'?t|do not|does not)\b(?:\W+\w+){0,3}?\W+(?:offer|have|give|provide)`)

var (
	percentDigitRe = regexp.MustCompile(`(\d+)\s*(?:%|percent(?:age)?)`)
	dollarsDigitRe = regexp.MustCompile(`(\d+)\s*dollars?\s*off`)
	percentWordRe  = regexp.MustCompile(`\b(ten|fifteen|twenty)\b\s*percent(?:age)?`)
	dollarsWordRe  = regexp.MustCompile(`\b(ten|fifteen|twenty)\b\s*dollars?\s*off`)
)

var writtenNumbers = map[string]string{
	"ten":     "10",
	"fifteen": "15",
	"twenty":  "20",
}

func (p *PatternClassifier) Classify(ctx context.Context, transcript string, turn int) (*models.SurveyResult, error) {
	lower := strings.ToLower(transcript)

	res := &models.SurveyResult{
		HasDiscount:     p.detectAffirmative(lower),
		DiscountAmount:  p.extractAmount(lower),
		DiscountDetails: transcript,
		ShouldEndCall:   true,
		EndReason:       models.EndReasonGotCompleteInfo,
	}
	if !res.HasDiscount {
		res.EndReason = models.EndReasonNoDiscountConfirmed
	}
	return res, nil
}

func (p *PatternClassifier) detectAffirmative(lower string) bool {
	if negatedRe.MatchString(lower) {
		return false
	}
	for _, tok := range affirmativeTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// extractAmount returns the first numeric discount mention, tagged with "%"
// or " dollars off" according to which pattern matched.
func (p *PatternClassifier) extractAmount(lower string) string {
	if m := percentDigitRe.FindStringSubmatch(lower); m != nil {
		return m[1] + "%"
	}
	if m := dollarsDigitRe.FindStringSubmatch(lower); m != nil {
		return m[1] + " dollars off"
	}
	if m := percentWordRe.FindStringSubmatch(lower); m != nil {
		return writtenNumbers[m[1]] + "%"
	}
	if m := dollarsWordRe.FindStringSubmatch(lower); m != nil {
		return writtenNumbers[m[1]] + " dollars off"
	}
	return ""
}

var _ Classifier = (*PatternClassifier)(nil)
