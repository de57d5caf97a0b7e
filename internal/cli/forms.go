package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sofiebrandt/prepdeck/internal/cli/formatter"
	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// prepdeckHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func prepdeckHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formSelectMode creates a huh form to choose the practice mode.
func formSelectMode(result *string) *huh.Form {
	*result = string(domain.ModeCustom)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How do you want to practice?").
				Options(
					huh.NewOption("Write my own question", string(domain.ModeCustom)),
					huh.NewOption("Pick from suggested questions", string(domain.ModePrompted)),
					huh.NewOption("Full generated case study", string(domain.ModeAiGenerated)),
				).
				Value(result),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

// formConfigure creates a huh form for case study configuration.
func formConfigure(topic, difficulty, level *string) *huh.Form {
	if *difficulty == "" {
		*difficulty = string(domain.DifficultyMedium)
	}
	if *level == "" {
		*level = string(domain.ExperienceMid)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Topic").
				Placeholder("e.g. pricing, retention, platform strategy").
				Value(topic).
				Validate(validateRequired("topic")),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy", string(domain.DifficultyEasy)),
					huh.NewOption("Medium", string(domain.DifficultyMedium)),
					huh.NewOption("Hard", string(domain.DifficultyHard)),
				).
				Value(difficulty),
			huh.NewSelect[string]().
				Title("Experience level").
				Options(
					huh.NewOption("Junior", string(domain.ExperienceJunior)),
					huh.NewOption("Mid", string(domain.ExperienceMid)),
					huh.NewOption("Senior", string(domain.ExperienceSenior)),
				).
				Value(level),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

// formTopicLevel creates a huh form asking only for topic and experience
// level, used by the prompted-question flow.
func formTopicLevel(topic, level *string) *huh.Form {
	if *level == "" {
		*level = string(domain.ExperienceMid)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Topic").
				Placeholder("e.g. pricing").
				Value(topic).
				Validate(validateRequired("topic")),
			huh.NewSelect[string]().
				Title("Experience level").
				Options(
					huh.NewOption("Junior", string(domain.ExperienceJunior)),
					huh.NewOption("Mid", string(domain.ExperienceMid)),
					huh.NewOption("Senior", string(domain.ExperienceSenior)),
				).
				Value(level),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

// formInputQuestion creates a huh form for authoring a custom question.
func formInputQuestion(topic, question *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Topic").
				Placeholder("e.g. pricing").
				Value(topic).
				Validate(validateRequired("topic")),
			huh.NewText().
				Title("Your interview question").
				Placeholder("Type the question you want to practice").
				Value(question).
				Validate(validateQuestionInput),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

// formSelectPrompted creates a huh form to pick one question from a generated
// list. Returns nil when the list is empty.
func formSelectPrompted(questions []domain.PromptedQuestion, result *string) *huh.Form {
	if len(questions) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(questions))
	for _, q := range questions {
		options = append(options, huh.NewOption(formatter.Truncate(q.Text, 80), q.Text))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a question").
				Options(options...).
				Value(result),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

// formInputAnswer creates a huh form for the answer text area, pre-filled
// with any existing draft.
func formInputAnswer(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Your answer").
				Placeholder("Write your full answer; a thorough response scores better").
				Lines(10).
				Value(result).
				Validate(validateAnswerInput),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

// Feedback step actions.
const (
	actionRestart = "restart"
	actionAnother = "another"
	actionShare   = "share"
	actionQuit    = "quit"
)

// formConfirmRetry asks whether to retry after a failed gateway call.
func formConfirmRetry(result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Try again?").
				Affirmative("Retry").
				Negative("Quit").
				Value(result),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

// formFeedbackAction creates a huh form to choose what happens after feedback.
func formFeedbackAction(mode domain.Mode, result *string) *huh.Form {
	*result = actionQuit

	options := []huh.Option[string]{}
	if mode == domain.ModeAiGenerated {
		options = append(options, huh.NewOption("New case study (same setup)", actionAnother))
	} else {
		options = append(options, huh.NewOption("Another question (same mode)", actionAnother))
	}
	if mode == domain.ModeCustom {
		options = append(options, huh.NewOption("Share this answer", actionShare))
	}
	options = append(options,
		huh.NewOption("Start over", actionRestart),
		huh.NewOption("Quit", actionQuit),
	)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(options...).
				Value(result),
		),
	).WithTheme(prepdeckHuhTheme()).WithShowHelp(false)
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateQuestionInput(s string) error {
	return domain.ValidateQuestionText(strings.TrimSpace(s))
}

func validateAnswerInput(s string) error {
	return domain.ValidateAnswerText(strings.TrimSpace(s))
}
