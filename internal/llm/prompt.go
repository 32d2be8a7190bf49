package llm

import (
	"encoding/json"
	"fmt"

	"github.com/Rrens/design-assistant/internal/domain"
)

const (
	// SummarySystem instructs the model when condensing long requests.
	SummarySystem = "You are a helpful assistant that summarizes text concisely."

	// RecommendationSystem frames the assistant for template advice.
	RecommendationSystem = "You are a helpful design assistant."
)

// BuildSummaryPrompt asks the model to condense a long design request
// without losing requirements.
func BuildSummaryPrompt(input string) string {
	return fmt.Sprintf(
		"Summarize the following design request concisely, preserving all important details and requirements: %q",
		input,
	)
}

// BuildRecommendationPrompt embeds up to three matched templates as JSON
// and asks for a response that recommends them.
func BuildRecommendationPrompt(request string, templates []domain.Template) string {
	if len(templates) > 3 {
		templates = templates[:3]
	}

	encoded, err := json.Marshal(templates)
	if err != nil {
		encoded = []byte("[]")
	}

	return fmt.Sprintf(
		"The user is asking about: %q.\n"+
			"Based on this request, I've found these templates that might be helpful: %s.\n"+
			"Provide a helpful response that recommends these templates and asks if they need any customization.",
		request, encoded,
	)
}
