package cli

import (
	"fmt"
	"strings"

	"github.com/sofiebrandt/prepdeck/internal/cli/formatter"
	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/sofiebrandt/prepdeck/internal/repository"
	"github.com/spf13/cobra"
)

func newQuestionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Manage the question bank",
	}

	cmd.AddCommand(
		newQuestionAddCmd(app),
		newQuestionListCmd(app),
		newQuestionRemoveCmd(app),
		newQuestionImportCmd(app),
	)

	return cmd
}

func newQuestionAddCmd(app *App) *cobra.Command {
	var topic, level, text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a question to the bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidExperienceLevels[level] {
				return fmt.Errorf("invalid level %q (junior, mid, senior)", level)
			}

			q := &domain.Question{
				Topic:           topic,
				ExperienceLevel: domain.ExperienceLevel(level),
				Text:            text,
			}
			if err := app.Questions.Create(cmd.Context(), q); err != nil {
				return err
			}

			fmt.Printf("Added question %s\n", q.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Question topic")
	cmd.Flags().StringVar(&level, "level", "mid", "Experience level (junior, mid, senior)")
	cmd.Flags().StringVar(&text, "text", "", "Question text")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newQuestionListCmd(app *App) *cobra.Command {
	var topic, level string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := app.Questions.List(cmd.Context(), repository.QuestionFilter{
				Topic:           topic,
				ExperienceLevel: domain.ExperienceLevel(level),
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatQuestionList(questions))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Filter by topic")
	cmd.Flags().StringVar(&level, "level", "", "Filter by experience level")

	return cmd
}

func newQuestionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a question and its shared answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Questions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Question removed.")
			return nil
		},
	}
}

func newQuestionImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import a question bank from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Import.ImportBank(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d question(s) and %d answer(s).\n", report.QuestionCount, report.AnswerCount)
			if len(report.Topics) > 0 {
				fmt.Println(formatter.Dim("Topics: " + strings.Join(report.Topics, ", ")))
			}
			return nil
		},
	}
}
