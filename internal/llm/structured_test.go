package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorePayload struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

func TestExtractJSON_Bare(t *testing.T) {
	got, err := ExtractJSON[scorePayload](`{"score": 7, "feedback": "solid"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Score)
	assert.Equal(t, "solid", got.Feedback)
}

func TestExtractJSON_MarkdownFences(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"score\": 3, \"feedback\": \"thin\"}\n```\nLet me know if you need more."
	got, err := ExtractJSON[scorePayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Score)
}

func TestExtractJSON_LeadingAndTrailingProse(t *testing.T) {
	raw := `Sure! {"score": 9, "feedback": "with a \"quoted\" {brace} inside"} Hope that helps.`
	got, err := ExtractJSON[scorePayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Score)
	assert.Contains(t, got.Feedback, "{brace}")
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	type nested struct {
		Outer struct {
			Inner int `json:"inner"`
		} `json:"outer"`
	}
	got, err := ExtractJSON[nested](`noise {"outer": {"inner": 5}} noise`, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Outer.Inner)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[scorePayload]("the model refused to answer", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[scorePayload](`{"score": 7, "feedback": "cut off`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	_, err := ExtractJSON[scorePayload](`{"score": -1}`, func(p scorePayload) error {
		if p.Score < 0 {
			return fmt.Errorf("score must be non-negative")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
