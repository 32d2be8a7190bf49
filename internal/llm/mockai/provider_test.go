package mockai_test

import (
	"context"
	"testing"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/llm"
	"github.com/Rrens/design-assistant/internal/llm/mockai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SummaryEchoesInput(t *testing.T) {
	p := mockai.NewProvider()

	input := `I need a "modern" logo for my coffee shop with warm colors`
	resp, err := p.Generate(context.Background(), llm.Request{
		Prompt: llm.BuildSummaryPrompt(input),
		System: llm.SummarySystem,
	}, "")

	require.NoError(t, err)
	assert.Equal(t, input, resp.Text)
}

func TestGenerate_RecommendationNamesTemplates(t *testing.T) {
	p := mockai.NewProvider()

	templates := []domain.Template{
		{ID: "1", Name: "Business Card", Category: "business", Tags: []string{"card"}},
		{ID: "10", Name: "Logo Template", Category: "business", Tags: []string{"logo"}},
	}
	resp, err := p.Generate(context.Background(), llm.Request{
		Prompt: llm.BuildRecommendationPrompt("a business card", templates),
		System: llm.RecommendationSystem,
	}, "")

	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Business Card")
	assert.Contains(t, resp.Text, "Logo Template")
}

func TestGenerate_NoTemplates(t *testing.T) {
	p := mockai.NewProvider()

	resp, err := p.Generate(context.Background(), llm.Request{
		Prompt: llm.BuildRecommendationPrompt("something obscure", nil),
		System: llm.RecommendationSystem,
	}, "")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Text)
}
