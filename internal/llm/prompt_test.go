package llm_test

import (
	"strings"
	"testing"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/llm"
)

func TestBuildRecommendationPrompt(t *testing.T) {
	templates := []domain.Template{
		{ID: "1", Name: "Business Card", Category: "business", Tags: []string{"card"}},
		{ID: "3", Name: "Instagram Post", Category: "social", Tags: []string{"post"}},
	}

	prompt := llm.BuildRecommendationPrompt("a card for my shop", templates)

	mustContain := []string{
		"a card for my shop",
		"Business Card",
		"Instagram Post",
		"customization",
	}

	for _, s := range mustContain {
		if !strings.Contains(prompt, s) {
			t.Errorf("prompt should contain %q", s)
		}
	}
}

func TestBuildRecommendationPrompt_CapsAtThreeTemplates(t *testing.T) {
	templates := []domain.Template{
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
		{ID: "3", Name: "Third"},
		{ID: "4", Name: "Fourth"},
	}

	prompt := llm.BuildRecommendationPrompt("anything", templates)

	if strings.Contains(prompt, "Fourth") {
		t.Error("prompt should embed at most three templates")
	}
	if !strings.Contains(prompt, "Third") {
		t.Error("prompt should keep the first three templates")
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := llm.BuildSummaryPrompt("a long design request")

	if !strings.Contains(prompt, "a long design request") {
		t.Error("prompt should contain the original request")
	}
	if !strings.Contains(prompt, "Summarize") {
		t.Error("prompt should ask for a summary")
	}
}
