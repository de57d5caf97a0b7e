package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestionText_Boundary(t *testing.T) {
	err := ValidateQuestionText(strings.Repeat("a", 9))
	require.Error(t, err)
	assert.True(t, IsTooShort(err))

	assert.NoError(t, ValidateQuestionText(strings.Repeat("a", 10)))
}

func TestValidateQuestionText_TrimsWhitespace(t *testing.T) {
	// 10 chars of padding around 9 chars of content is still too short.
	err := ValidateQuestionText("     " + strings.Repeat("a", 9) + "     ")
	require.Error(t, err)

	var tse *TooShortError
	require.ErrorAs(t, err, &tse)
	assert.Equal(t, "question", tse.Field)
	assert.Equal(t, 9, tse.Got)
	assert.Equal(t, 10, tse.Min)
}

func TestValidateAnswerText_Boundary(t *testing.T) {
	err := ValidateAnswerText(strings.Repeat("b", 49))
	require.Error(t, err)
	assert.True(t, IsTooShort(err))

	assert.NoError(t, ValidateAnswerText(strings.Repeat("b", 50)))
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"only whitespace", "   \n\t  ", 0},
		{"single word", "hello", 1},
		{"multiple spaces", "two   words", 2},
		{"mixed whitespace", "one\ntwo\tthree four", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.text))
		})
	}
}
