package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sofiebrandt/prepdeck/internal/cli"
	"github.com/sofiebrandt/prepdeck/internal/config"
	"github.com/sofiebrandt/prepdeck/internal/db"
	"github.com/sofiebrandt/prepdeck/internal/evaluation"
	"github.com/sofiebrandt/prepdeck/internal/llm"
	"github.com/sofiebrandt/prepdeck/internal/repository"
	"github.com/sofiebrandt/prepdeck/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	questionRepo := repository.NewSQLiteQuestionRepo(database)
	answerRepo := repository.NewSQLiteSharedAnswerRepo(database)
	draftRepo := repository.NewSQLiteDraftRepo(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewClient(llmCfg, observer)

	app := &cli.App{
		Questions: service.NewQuestionService(questionRepo),
		Answers:   service.NewSharedAnswerService(answerRepo, questionRepo),
		Drafts:    service.NewDraftService(draftRepo),
		Import:    service.NewImportService(db.NewSQLiteUnitOfWork(database)),
		Gateway:   evaluation.NewGateway(llmClient),
		Config:    cfg,
	}

	// Detect interactive terminal for the practice wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
