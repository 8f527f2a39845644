package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("Our new app launches today!")
	require.NoError(t, err)

	assert.Equal(t, "You are a Social Media Expert. Analyze this text and give 3 improvements.\n\nText:\nOur new app launches today!\n", prompt)
}

func TestBuildPromptKeepsTextVerbatim(t *testing.T) {
	text := "<b>Bold</b> & {{.text}} \"quoted\"\nsecond line"
	prompt, err := BuildPrompt(text)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Text:\n"+text+"\n")
}
