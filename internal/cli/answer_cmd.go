package cli

import (
	"fmt"

	"github.com/sofiebrandt/prepdeck/internal/cli/formatter"
	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/spf13/cobra"
)

func newAnswerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Browse and share answers",
	}

	cmd.AddCommand(
		newAnswerListCmd(app),
		newAnswerShareCmd(app),
	)

	return cmd
}

func newAnswerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <question-id>",
		Short: "List shared answers for a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := app.Questions.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			answers, err := app.Answers.ListByQuestion(cmd.Context(), q.ID)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Bold(q.Text))
			fmt.Println(formatter.FormatSharedAnswers(answers))
			return nil
		},
	}
}

func newAnswerShareCmd(app *App) *cobra.Command {
	var author, text string

	cmd := &cobra.Command{
		Use:   "share <question-id>",
		Short: "Share an answer for a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.SharedAnswer{
				QuestionID: args[0],
				Author:     author,
				Text:       text,
			}
			if err := app.Answers.Share(cmd.Context(), a); err != nil {
				return err
			}

			fmt.Printf("Shared answer %s\n", a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Display name (defaults to anonymous)")
	cmd.Flags().StringVar(&text, "text", "", "Answer text")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
