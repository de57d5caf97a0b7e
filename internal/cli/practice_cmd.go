package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sofiebrandt/prepdeck/internal/cli/formatter"
	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/evaluation"
	"github.com/sofiebrandt/prepdeck/internal/wizard"
	"github.com/spf13/cobra"
)

func newPracticeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Run a guided practice session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("practice requires an interactive terminal")
			}
			runner := &practiceRunner{
				app:     app,
				ctrl:    wizard.NewController(),
				guard:   wizard.NewInflightGuard(),
				gateway: app.Gateway,
				spin:    runWithSpinner,
				confirmRetry: func(ctx context.Context) (bool, error) {
					retry := true
					if err := formConfirmRetry(&retry).RunWithContext(ctx); err != nil {
						return false, err
					}
					return retry, nil
				},
			}
			return runner.run(cmd.Context())
		},
	}
}

// practiceRunner drives one interactive wizard session. Each loop iteration
// renders the active step, collects input, and advances the controller.
type practiceRunner struct {
	app     *App
	ctrl    *wizard.Controller
	guard   *wizard.InflightGuard
	gateway evaluation.Gateway

	// spin and confirmRetry are indirected so tests can drive the wizard
	// without a terminal.
	spin         func(ctx context.Context, message string, work func() error) error
	confirmRetry func(ctx context.Context) (bool, error)

	// draftQuestionID keys saved answer drafts for the current question.
	draftQuestionID string
}

// errQuitPractice signals a clean, user-chosen exit from the wizard loop.
var errQuitPractice = errors.New("practice ended")

func (r *practiceRunner) run(ctx context.Context) error {
	for {
		var err error
		switch r.ctrl.Current() {
		case domain.StepMode:
			err = r.stepMode(ctx)
		case domain.StepConfigure:
			err = r.stepConfigure(ctx)
		case domain.StepQuestion:
			err = r.stepQuestion(ctx)
		case domain.StepAnswer:
			err = r.stepAnswer(ctx)
		case domain.StepFeedback:
			var done bool
			done, err = r.stepFeedback(ctx)
			if err == nil && done {
				return nil
			}
		default:
			return fmt.Errorf("unknown step %q", r.ctrl.Current())
		}
		if errors.Is(err, errQuitPractice) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// promptRetry reports a failed gateway call and asks whether to try again.
// The wizard stays on the current step with its entered state intact either
// way; declining ends the session cleanly via errQuitPractice.
func (r *practiceRunner) promptRetry(ctx context.Context, err error) error {
	fmt.Println(formatter.StyleRed.Render(describeProviderError(err).Error()))
	retry, ferr := r.confirmRetry(ctx)
	if ferr != nil {
		return ferr
	}
	if !retry {
		return errQuitPractice
	}
	return nil
}

func (r *practiceRunner) stepMode(ctx context.Context) error {
	var mode string
	if err := formSelectMode(&mode).RunWithContext(ctx); err != nil {
		return err
	}
	return r.ctrl.SelectMode(domain.Mode(mode))
}

func (r *practiceRunner) stepConfigure(ctx context.Context) error {
	session := r.ctrl.Session()
	topic := session.Topic
	difficulty := string(session.Difficulty)
	level := string(session.ExperienceLevel)

	if err := formConfigure(&topic, &difficulty, &level).RunWithContext(ctx); err != nil {
		return err
	}

	return r.ctrl.CompleteStep(domain.StepConfigure, domain.SessionPatch{
		Topic:           strings.TrimSpace(topic),
		Difficulty:      domain.Difficulty(difficulty),
		ExperienceLevel: domain.ExperienceLevel(level),
	})
}

func (r *practiceRunner) stepQuestion(ctx context.Context) error {
	switch r.ctrl.Mode() {
	case domain.ModeAiGenerated:
		return r.questionFromCaseStudy(ctx)
	case domain.ModePrompted:
		return r.questionFromPromptedList(ctx)
	default:
		return r.questionFromUser(ctx)
	}
}

func (r *practiceRunner) questionFromCaseStudy(ctx context.Context) error {
	session := r.ctrl.Session()

	ticket, ok := r.guard.Begin(wizard.OpGenerateCase)
	if !ok {
		return nil
	}
	var cs *domain.CaseStudyDetails
	err := r.spin(ctx, "Generating case study...", func() error {
		var err error
		cs, err = r.gateway.GenerateCaseStudy(ctx, session.Topic, session.Difficulty)
		return err
	})
	if !r.guard.Finish(ticket) {
		return nil
	}
	if err != nil {
		return r.promptRetry(ctx, err)
	}

	fmt.Println(formatter.FormatCaseStudy(cs))
	r.draftQuestionID = "case:" + cs.Title

	return r.ctrl.CompleteStep(domain.StepQuestion, domain.SessionPatch{
		GeneratedCaseStudy: cs,
	})
}

func (r *practiceRunner) questionFromPromptedList(ctx context.Context) error {
	var topic, level string
	if err := formTopicLevel(&topic, &level).RunWithContext(ctx); err != nil {
		return err
	}

	ticket, ok := r.guard.Begin(wizard.OpFetchPrompted)
	if !ok {
		return nil
	}
	var questions []domain.PromptedQuestion
	err := r.spin(ctx, "Fetching suggested questions...", func() error {
		var err error
		questions, err = r.gateway.FetchPromptedQuestions(ctx, strings.TrimSpace(topic), domain.ExperienceLevel(level))
		return err
	})
	if !r.guard.Finish(ticket) {
		return nil
	}
	if err != nil {
		return r.promptRetry(ctx, err)
	}
	if len(questions) == 0 {
		fmt.Println(formatter.Dim("No suggestions came back; try a different topic."))
		return nil
	}

	var picked string
	form := formSelectPrompted(questions, &picked)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	r.draftQuestionID = "prompted:" + picked
	return r.ctrl.CompleteStep(domain.StepQuestion, domain.SessionPatch{
		Topic:           strings.TrimSpace(topic),
		ExperienceLevel: domain.ExperienceLevel(level),
		Question:        picked,
	})
}

func (r *practiceRunner) questionFromUser(ctx context.Context) error {
	session := r.ctrl.Session()
	topic := session.Topic
	var question string

	if err := formInputQuestion(&topic, &question).RunWithContext(ctx); err != nil {
		return err
	}
	question = strings.TrimSpace(question)

	// Advisory check only; an unusable provider never blocks practice.
	if ticket, ok := r.guard.Begin(wizard.OpValidateQuestion); ok {
		var check evaluation.QuestionCheck
		_ = r.spin(ctx, "Checking question...", func() error {
			check, _ = r.gateway.ValidateQuestion(ctx, question)
			return nil
		})
		if r.guard.Finish(ticket) && !check.IsValid && check.Feedback != "" {
			fmt.Println(formatter.StyleYellow.Render("Heads up: ") + check.Feedback)
		}
	}

	r.draftQuestionID = "custom:" + question
	return r.ctrl.CompleteStep(domain.StepQuestion, domain.SessionPatch{
		Topic:    strings.TrimSpace(topic),
		Question: question,
	})
}

func (r *practiceRunner) stepAnswer(ctx context.Context) error {
	answer, err := r.app.Drafts.Load(ctx, r.draftQuestionID)
	if err != nil {
		answer = ""
	}
	if answer != "" {
		fmt.Println(formatter.Dim("Restored your saved draft."))
	}

	if err := formInputAnswer(&answer).RunWithContext(ctx); err != nil {
		// Preserve whatever was typed before bailing out.
		if answer != "" && r.draftQuestionID != "" {
			_ = r.app.Drafts.Save(context.WithoutCancel(ctx), r.draftQuestionID, answer)
		}
		return err
	}
	answer = strings.TrimSpace(answer)
	fmt.Println(formatter.Dim(fmt.Sprintf("Submitted %d words.", domain.WordCount(answer))))

	if r.draftQuestionID != "" {
		_ = r.app.Drafts.Save(ctx, r.draftQuestionID, answer)
	}

	return r.ctrl.CompleteStep(domain.StepAnswer, domain.SessionPatch{
		UserAnswer: answer,
	})
}

func (r *practiceRunner) stepFeedback(ctx context.Context) (bool, error) {
	session := r.ctrl.Session()

	if session.Analysis == nil {
		result, scaleMax, err := r.analyze(ctx, session)
		if err != nil {
			// Stay on Feedback; the answer and configuration are kept so a
			// retry re-runs the analysis with the same input.
			return false, r.promptRetry(ctx, err)
		}
		if result == nil {
			// Stale after navigation; redraw the loop.
			return false, nil
		}
		fmt.Println(formatter.FormatAnalysis(result, scaleMax))
		if err := r.ctrl.CompleteStep(domain.StepFeedback, domain.SessionPatch{Analysis: result}); err != nil {
			return false, err
		}
		if r.draftQuestionID != "" {
			_ = r.app.Drafts.Discard(ctx, r.draftQuestionID)
		}
	}

	var action string
	if err := formFeedbackAction(r.ctrl.Mode(), &action).RunWithContext(ctx); err != nil {
		return false, err
	}

	switch action {
	case actionAnother:
		r.guard.Invalidate()
		r.draftQuestionID = ""
		return false, r.ctrl.GenerateAnother()
	case actionRestart:
		r.guard.Invalidate()
		r.draftQuestionID = ""
		r.ctrl.Restart()
		return false, nil
	case actionShare:
		if err := r.shareAnswer(ctx); err != nil {
			fmt.Println(formatter.StyleRed.Render("Could not share: ") + err.Error())
		}
		return true, nil
	default:
		return true, nil
	}
}

// analyze runs the mode-appropriate evaluation. A nil result with nil error
// means the response resolved stale and must be discarded.
func (r *practiceRunner) analyze(ctx context.Context, session domain.PracticeSession) (*domain.AnalysisResult, int, error) {
	if r.ctrl.Mode() == domain.ModeAiGenerated {
		ticket, ok := r.guard.Begin(wizard.OpEvaluateCase)
		if !ok {
			return nil, 0, nil
		}
		var result *domain.AnalysisResult
		err := r.spin(ctx, "Evaluating your response...", func() error {
			var err error
			result, err = r.gateway.EvaluateCaseStudy(ctx, session.GeneratedCaseStudy, session.UserAnswer)
			return err
		})
		if !r.guard.Finish(ticket) {
			return nil, 0, nil
		}
		if err != nil && !errors.Is(err, evaluation.ErrMalformedResponse) {
			return nil, 0, err
		}
		if errors.Is(err, evaluation.ErrMalformedResponse) {
			fmt.Println(formatter.Dim("The evaluator returned an unusable reply; showing fallback feedback."))
		}
		return result, evaluation.CaseScale.Max, nil
	}

	// Best effort: a reference answer enriches the analysis prompt, but its
	// absence never blocks feedback.
	optimal := ""
	if ticket, ok := r.guard.Begin(wizard.OpOptimalAnswer); ok {
		_ = r.spin(ctx, "Drafting a reference answer...", func() error {
			var err error
			optimal, err = r.gateway.GenerateOptimalAnswer(ctx, session.Question, session.Topic)
			if err != nil {
				optimal = ""
			}
			return nil
		})
		if !r.guard.Finish(ticket) {
			return nil, 0, nil
		}
	}

	ticket, ok := r.guard.Begin(wizard.OpAnalyzeAnswer)
	if !ok {
		return nil, 0, nil
	}
	var result *domain.AnalysisResult
	err := r.spin(ctx, "Analyzing your answer...", func() error {
		var err error
		result, err = r.gateway.AnalyzeAnswer(ctx, session.Question, session.UserAnswer, optimal, session.Topic)
		return err
	})
	if !r.guard.Finish(ticket) {
		return nil, 0, nil
	}
	if err != nil && !errors.Is(err, evaluation.ErrMalformedResponse) {
		return nil, 0, err
	}
	if errors.Is(err, evaluation.ErrMalformedResponse) {
		fmt.Println(formatter.Dim("The evaluator returned an unusable reply; showing fallback feedback."))
	}
	return result, evaluation.AnswerScale.Max, nil
}

// shareAnswer stores the custom question and the scored answer so others can
// browse them later.
func (r *practiceRunner) shareAnswer(ctx context.Context) error {
	session := r.ctrl.Session()

	q := &domain.Question{
		Topic:           session.Topic,
		ExperienceLevel: session.ExperienceLevel,
		Text:            session.Question,
	}
	if q.ExperienceLevel == "" {
		q.ExperienceLevel = domain.ExperienceMid
	}
	if err := r.app.Questions.Create(ctx, q); err != nil {
		return err
	}

	var score *int
	if session.Analysis != nil {
		s := session.Analysis.UserScore
		score = &s
	}
	a := &domain.SharedAnswer{
		QuestionID: q.ID,
		Text:       session.UserAnswer,
		Score:      score,
	}
	if err := r.app.Answers.Share(ctx, a); err != nil {
		return err
	}

	fmt.Println(formatter.StyleGreen.Render("Shared. ") + formatter.Dim("Question "+q.ID))
	return nil
}

// describeProviderError turns gateway failures into user-facing messages.
func describeProviderError(err error) error {
	switch {
	case errors.Is(err, evaluation.ErrQuotaExceeded):
		return fmt.Errorf("the generation service is over quota; try again later")
	case errors.Is(err, evaluation.ErrNetwork):
		return fmt.Errorf("could not reach the generation service; check your connection and PREPDECK_LLM_ENDPOINT")
	default:
		return err
	}
}
