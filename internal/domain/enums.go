package domain

// Step is one named stage in the practice wizard's fixed sequence.
type Step string

const (
	StepMode      Step = "mode"
	StepConfigure Step = "configure"
	StepQuestion  Step = "question"
	StepAnswer    Step = "answer"
	StepFeedback  Step = "feedback"
)

// StepSequence is the canonical ordered list of wizard steps.
// The order is fixed; no step is ever skipped implicitly.
var StepSequence = []Step{StepMode, StepConfigure, StepQuestion, StepAnswer, StepFeedback}

// StepIndex returns the position of s in StepSequence, or -1 if s is not
// a known step.
func StepIndex(s Step) int {
	for i, step := range StepSequence {
		if step == s {
			return i
		}
	}
	return -1
}

// Mode is the content-sourcing strategy chosen at the first wizard step.
type Mode string

const (
	// ModeCustom: the user authors their own question.
	ModeCustom Mode = "custom"
	// ModePrompted: the user picks from a generated question list.
	ModePrompted Mode = "prompted"
	// ModeAiGenerated: a full case study is generated from configuration.
	ModeAiGenerated Mode = "ai_generated"
)

// ValidModes is the canonical set of accepted mode strings.
var ValidModes = map[string]bool{
	"custom": true, "prompted": true, "ai_generated": true,
}

// EffectiveSequence returns the step sequence for the given mode.
// Custom and Prompted bypass the Configure step; AiGenerated walks the
// full sequence.
func EffectiveSequence(mode Mode) []Step {
	if mode == ModeAiGenerated {
		return StepSequence
	}
	return []Step{StepMode, StepQuestion, StepAnswer, StepFeedback}
}

// NextStep returns the step following s in the effective sequence for mode.
// Returns ("", false) when s is the terminal step or unknown.
func NextStep(mode Mode, s Step) (Step, bool) {
	seq := EffectiveSequence(mode)
	for i, step := range seq {
		if step == s && i+1 < len(seq) {
			return seq[i+1], true
		}
	}
	return "", false
}

// Difficulty of a generated case study.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

// ExperienceLevel describes the seniority a question targets.
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// ValidExperienceLevels is the canonical set of accepted experience strings.
var ValidExperienceLevels = map[string]bool{
	"junior": true, "mid": true, "senior": true,
}
