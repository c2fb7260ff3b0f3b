package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPrompt(t *testing.T) {
	t.Run("prefixes notes verbatim", func(t *testing.T) {
		notes := "Client completed 8/10 trials."
		assert.Equal(t, "Please optimize these ABA therapy session notes:\n\nClient completed 8/10 trials.", BuildUserPrompt(notes))
	})

	t.Run("does not trim or escape", func(t *testing.T) {
		notes := "  <b>\"quoted\"</b>\n\t"
		assert.Equal(t, "Please optimize these ABA therapy session notes:\n\n"+notes, BuildUserPrompt(notes))
	})

	t.Run("empty notes", func(t *testing.T) {
		assert.Equal(t, "Please optimize these ABA therapy session notes:\n\n", BuildUserPrompt(""))
	})
}

func TestSystemPrompt(t *testing.T) {
	sections := []string{
		"Behaviors Observed:",
		"Interventions Used:",
		"Progress Made:",
		"Challenges:",
		"Recommendations:",
	}
	for _, s := range sections {
		assert.Contains(t, SystemPrompt, "\n\n"+s+"\n- {specific ")
	}

	assert.True(t, strings.HasPrefix(SystemPrompt, "You are an expert ABA therapy note optimizer."))
	assert.True(t, strings.HasSuffix(SystemPrompt, `7. Include all sections even if empty (use "- None noted" in this case)`))
	assert.Equal(t, strings.TrimSpace(SystemPrompt), SystemPrompt)
}
