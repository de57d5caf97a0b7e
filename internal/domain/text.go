package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinQuestionLen is the minimum trimmed length of a custom question.
	MinQuestionLen = 10
	// MinAnswerLen is the minimum trimmed length of a submitted answer.
	MinAnswerLen = 50
)

// TooShortError reports user input below the minimum length for its field.
// It is surfaced inline next to the input and never reaches the gateway.
type TooShortError struct {
	Field string
	Min   int
	Got   int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("%s must be at least %d characters (got %d)", e.Field, e.Min, e.Got)
}

// IsTooShort reports whether err is a TooShortError.
func IsTooShort(err error) bool {
	var tse *TooShortError
	return errors.As(err, &tse)
}

// ValidateQuestionText checks that a candidate question meets the minimum
// length after trimming. Pure, no I/O.
func ValidateQuestionText(text string) error {
	got := len(strings.TrimSpace(text))
	if got < MinQuestionLen {
		return &TooShortError{Field: "question", Min: MinQuestionLen, Got: got}
	}
	return nil
}

// ValidateAnswerText checks that a submitted answer meets the minimum length
// after trimming.
func ValidateAnswerText(text string) error {
	got := len(strings.TrimSpace(text))
	if got < MinAnswerLen {
		return &TooShortError{Field: "answer", Min: MinAnswerLen, Got: got}
	}
	return nil
}

// WordCount counts non-empty whitespace-separated tokens. Display hint only;
// submission is never gated on word count.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
