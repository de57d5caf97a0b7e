package importer

import (
	"fmt"

	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// ValidateBankSchema checks the bank schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateBankSchema(schema *BankSchema) []error {
	var errs []error

	if schema.Bank.Name == "" {
		errs = append(errs, fmt.Errorf("bank.name is required"))
	}
	if schema.Bank.ExperienceLevel != "" && !domain.ValidExperienceLevels[schema.Bank.ExperienceLevel] {
		errs = append(errs, fmt.Errorf("bank.experience_level: invalid value %q", schema.Bank.ExperienceLevel))
	}
	if len(schema.Questions) == 0 {
		errs = append(errs, fmt.Errorf("questions list is empty"))
	}

	seen := make(map[string]bool)
	for i, q := range schema.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		if err := domain.ValidateQuestionText(q.Text); err != nil {
			errs = append(errs, fmt.Errorf("%s.text: %w", prefix, err))
		} else if seen[q.Text] {
			errs = append(errs, fmt.Errorf("%s.text: duplicate question", prefix))
		} else {
			seen[q.Text] = true
		}

		if q.Topic == "" && schema.Bank.Topic == "" {
			errs = append(errs, fmt.Errorf("%s.topic is required when bank.topic is unset", prefix))
		}
		if q.ExperienceLevel != "" && !domain.ValidExperienceLevels[q.ExperienceLevel] {
			errs = append(errs, fmt.Errorf("%s.experience_level: invalid value %q", prefix, q.ExperienceLevel))
		}
		if q.ExperienceLevel == "" && schema.Bank.ExperienceLevel == "" {
			errs = append(errs, fmt.Errorf("%s.experience_level is required when bank.experience_level is unset", prefix))
		}

		for j, a := range q.Answers {
			aPrefix := fmt.Sprintf("%s.answers[%d]", prefix, j)
			if err := domain.ValidateAnswerText(a.Text); err != nil {
				errs = append(errs, fmt.Errorf("%s.text: %w", aPrefix, err))
			}
			if a.Score != nil && (*a.Score < 1 || *a.Score > 10) {
				errs = append(errs, fmt.Errorf("%s.score: %d out of range 1-10", aPrefix, *a.Score))
			}
		}
	}

	return errs
}
