package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// ConvertedBank holds the domain entities built from a validated schema.
type ConvertedBank struct {
	Questions []*domain.Question
	// Answers is keyed by question ID.
	Answers map[string][]*domain.SharedAnswer
}

// ConvertBankSchema turns a validated schema into domain entities, applying
// bank-level topic and experience level defaults. The schema must have
// passed ValidateBankSchema.
func ConvertBankSchema(schema *BankSchema) *ConvertedBank {
	now := time.Now().UTC()
	out := &ConvertedBank{Answers: make(map[string][]*domain.SharedAnswer)}

	for _, qi := range schema.Questions {
		topic := qi.Topic
		if topic == "" {
			topic = schema.Bank.Topic
		}
		level := qi.ExperienceLevel
		if level == "" {
			level = schema.Bank.ExperienceLevel
		}

		q := &domain.Question{
			ID:              uuid.New().String(),
			Topic:           topic,
			ExperienceLevel: domain.ExperienceLevel(level),
			Text:            strings.TrimSpace(qi.Text),
			Source:          domain.SourceImported,
			CreatedAt:       now,
		}
		out.Questions = append(out.Questions, q)

		for _, ai := range qi.Answers {
			author := ai.Author
			if author == "" {
				author = "anonymous"
			}
			out.Answers[q.ID] = append(out.Answers[q.ID], &domain.SharedAnswer{
				ID:         uuid.New().String(),
				QuestionID: q.ID,
				Author:     author,
				Text:       strings.TrimSpace(ai.Text),
				Score:      ai.Score,
				CreatedAt:  now,
			})
		}
	}

	return out
}

// Topics returns the distinct topics in the converted bank, in first-seen order.
func (c *ConvertedBank) Topics() []string {
	var topics []string
	seen := make(map[string]bool)
	for _, q := range c.Questions {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics
}
