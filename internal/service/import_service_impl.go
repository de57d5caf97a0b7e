package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sofiebrandt/prepdeck/internal/db"
	"github.com/sofiebrandt/prepdeck/internal/importer"
	"github.com/sofiebrandt/prepdeck/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

// ImportBank loads, validates, and persists a question bank. All rows are
// written inside a single transaction; a failing row rolls back the whole
// bank.
func (s *importService) ImportBank(ctx context.Context, filePath string) (*ImportReport, error) {
	schema, err := importer.LoadBankSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading bank: %w", err)
	}

	if errs := importer.ValidateBankSchema(schema); len(errs) > 0 {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("bank validation failed with %d error(s):\n", len(errs)))
		for _, e := range errs {
			b.WriteString("  - " + e.Error() + "\n")
		}
		return nil, errors.New(strings.TrimRight(b.String(), "\n"))
	}

	bank := importer.ConvertBankSchema(schema)

	report := &ImportReport{Topics: bank.Topics()}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		questions := repository.NewSQLiteQuestionRepo(tx)
		answers := repository.NewSQLiteSharedAnswerRepo(tx)

		for _, q := range bank.Questions {
			if err := questions.Create(ctx, q); err != nil {
				return fmt.Errorf("importing question %q: %w", q.Text, err)
			}
			report.QuestionCount++
			for _, a := range bank.Answers[q.ID] {
				if err := answers.Create(ctx, a); err != nil {
					return fmt.Errorf("importing answer for %q: %w", q.Text, err)
				}
				report.AnswerCount++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
