package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BankSchema is the top-level YAML structure for question bank import.
type BankSchema struct {
	Bank      BankMeta         `yaml:"bank"`
	Questions []QuestionImport `yaml:"questions"`
}

// BankMeta defines bank-level fields in the import file.
type BankMeta struct {
	Name            string `yaml:"name"`
	Topic           string `yaml:"topic,omitempty"`
	ExperienceLevel string `yaml:"experience_level,omitempty"`
}

// QuestionImport defines a single question in the import file. Topic and
// experience_level fall back to the bank-level values when omitted.
type QuestionImport struct {
	Text            string         `yaml:"text"`
	Topic           string         `yaml:"topic,omitempty"`
	ExperienceLevel string         `yaml:"experience_level,omitempty"`
	Answers         []AnswerImport `yaml:"answers,omitempty"`
}

// AnswerImport defines a shared answer attached to an imported question.
type AnswerImport struct {
	Author string `yaml:"author,omitempty"`
	Text   string `yaml:"text"`
	Score  *int   `yaml:"score,omitempty"`
}

// LoadBankSchema reads and parses a question bank YAML file.
func LoadBankSchema(path string) (*BankSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema BankSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing bank file: %w", err)
	}
	return &schema, nil
}
