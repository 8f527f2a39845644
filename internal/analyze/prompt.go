package analyze

import (
	"fmt"

	"github.com/tmc/langchaingo/prompts"
)

const critiqueTemplate = `You are a Social Media Expert. Analyze this text and give 3 improvements.

Text:
{{.text}}
`

var critiquePrompt = prompts.NewPromptTemplate(critiqueTemplate, []string{"text"})

// BuildPrompt renders the critique instruction around the extracted text.
// The text is inserted verbatim.
func BuildPrompt(text string) (string, error) {
	out, err := critiquePrompt.Format(map[string]any{"text": text})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return out, nil
}
