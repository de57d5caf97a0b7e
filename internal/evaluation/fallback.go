package evaluation

import "github.com/sofiebrandt/prepdeck/internal/domain"

// PlaceholderAnalysis builds the deterministic AnalysisResult used when the
// provider's payload cannot be parsed. Every field is populated so the UI
// never renders an undefined value; the score sits at the bottom of the scale
// to avoid inflating a result that was never actually produced.
func PlaceholderAnalysis(scale Scale, knownOptimal string) *domain.AnalysisResult {
	optimal := knownOptimal
	if optimal == "" {
		optimal = "A reference answer could not be produced for this attempt."
	}
	return &domain.AnalysisResult{
		OptimalAnswer: optimal,
		UserScore:     scale.Min,
		Strengths: []string{
			"Your answer was recorded.",
		},
		Improvements: []string{
			"Automated feedback was unavailable for this attempt.",
		},
		Suggestions: []string{
			"Submit the answer again to request fresh feedback.",
		},
		DetailedFeedback: "The evaluation service returned an unreadable response, so no detailed feedback is available for this attempt. Your answer has been kept; submitting again will request a new evaluation.",
	}
}
