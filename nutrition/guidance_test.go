package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerQuestion_ProteinTopic(t *testing.T) {
	guidance := AnswerQuestion("What are good protein sources for athletes?")

	assert.Equal(t, "What are good protein sources for athletes?", guidance.Question)
	assert.Contains(t, guidance.SuggestedSearches, "chicken breast")
	require.NotEmpty(t, guidance.Tips)
}

func TestAnswerQuestion_MultipleTopicsDeduplicated(t *testing.T) {
	guidance := AnswerQuestion("Does iron or calcium matter more for bone health?")

	seen := map[string]int{}
	for _, search := range guidance.SuggestedSearches {
		seen[search]++
	}
	for search, count := range seen {
		assert.Equal(t, 1, count, "suggestion %q repeated", search)
	}
	assert.Contains(t, guidance.SuggestedSearches, "milk")
}

func TestAnswerQuestion_FallsBackToGeneralGuidance(t *testing.T) {
	guidance := AnswerQuestion("Hello there")

	assert.Equal(t, generalSearches, guidance.SuggestedSearches)
	assert.Equal(t, generalTips, guidance.Tips)
}

func TestAnswerQuestion_ToleratesInflections(t *testing.T) {
	guidance := AnswerQuestion("which foods have the most proteins")

	assert.Contains(t, guidance.SuggestedSearches, "chicken breast")
}
