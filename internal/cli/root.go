package cli

import (
	"os"
	"strings"

	"github.com/sofiebrandt/prepdeck/internal/config"
	"github.com/sofiebrandt/prepdeck/internal/evaluation"
	"github.com/sofiebrandt/prepdeck/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Questions service.QuestionService
	Answers   service.SharedAnswerService
	Drafts    service.DraftService
	Import    service.ImportService
	Gateway   evaluation.Gateway
	Config    *config.Config

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "prepdeck" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "prepdeck",
		Short: "Interview practice wizard with generated feedback",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			bindEnvToFlags(cmd)
		},
	}

	root.AddCommand(
		newPracticeCmd(app),
		newQuestionCmd(app),
		newAnswerCmd(app),
		newServeCmd(app),
	)

	return root
}

// bindEnvToFlags fills any flag not set on the command line from a
// PREPDECK_<FLAG> environment variable, so e.g. PREPDECK_LEVEL=senior acts
// as a default for --level.
func bindEnvToFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		env := "PREPDECK_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if v, ok := os.LookupEnv(env); ok {
			_ = cmd.Flags().Set(f.Name, v)
		}
	})
}
