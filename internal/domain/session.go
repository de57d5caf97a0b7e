package domain

// CaseStudyDetails is a fully generated interview scenario. It is immutable
// once produced; a new generation replaces the prior value wholesale, never
// merging partial fields.
type CaseStudyDetails struct {
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Industry          string   `json:"industry"`
	CompanySize       string   `json:"company_size"`
	Challenge         string   `json:"challenge"`
	DetailedChallenge string   `json:"detailed_challenge"`
	Stakeholders      []string `json:"stakeholders"`
	Constraints       []string `json:"constraints"`
	Objectives        []string `json:"objectives"`
	Timeframe         string   `json:"timeframe"`
}

// AnalysisResult is structured feedback on a submitted answer. Immutable once
// produced. UserScore is always clamped by the producer to the scale of the
// operation that created it (1-10 for answer analysis, 0-100 for case-study
// evaluation) and never trusted raw from the provider.
type AnalysisResult struct {
	OptimalAnswer    string   `json:"optimal_answer"`
	UserScore        int      `json:"user_score"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	Suggestions      []string `json:"suggestions"`
	DetailedFeedback string   `json:"detailed_feedback"`
}

// PromptedQuestion is one entry from a generated question list.
type PromptedQuestion struct {
	Text            string          `json:"text"`
	Topic           string          `json:"topic"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
}

// PracticeSession is the ephemeral data accumulated across one wizard run.
// Fields fill in progressively as steps complete; the whole value resets on
// restart. It is owned by a single interactive user and never shared.
type PracticeSession struct {
	Topic           string
	Difficulty      Difficulty
	ExperienceLevel ExperienceLevel

	Question           string
	GeneratedCaseStudy *CaseStudyDetails
	UserAnswer         string
	Analysis           *AnalysisResult
}

// SessionPatch carries the partial session data produced by one completed
// step. Nil/empty fields leave the session untouched.
type SessionPatch struct {
	Topic           string
	Difficulty      Difficulty
	ExperienceLevel ExperienceLevel

	Question           string
	GeneratedCaseStudy *CaseStudyDetails
	UserAnswer         string
	Analysis           *AnalysisResult
}

// Apply merges the patch into the session. Non-empty patch fields replace the
// corresponding session fields; everything else is preserved.
func (s *PracticeSession) Apply(p SessionPatch) {
	if p.Topic != "" {
		s.Topic = p.Topic
	}
	if p.Difficulty != "" {
		s.Difficulty = p.Difficulty
	}
	if p.ExperienceLevel != "" {
		s.ExperienceLevel = p.ExperienceLevel
	}
	if p.Question != "" {
		s.Question = p.Question
	}
	if p.GeneratedCaseStudy != nil {
		s.GeneratedCaseStudy = p.GeneratedCaseStudy
	}
	if p.UserAnswer != "" {
		s.UserAnswer = p.UserAnswer
	}
	if p.Analysis != nil {
		s.Analysis = p.Analysis
	}
}

// Reset clears every field, returning the session to its initial empty value.
func (s *PracticeSession) Reset() {
	*s = PracticeSession{}
}

// ClearContent drops the per-run content (question, case study, answer,
// analysis) while keeping topic, difficulty, and experience level. Used by
// the mode-preserving "generate another" shortcut.
func (s *PracticeSession) ClearContent() {
	s.Question = ""
	s.GeneratedCaseStudy = nil
	s.UserAnswer = ""
	s.Analysis = nil
}
