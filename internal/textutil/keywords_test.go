package textutil_test

import (
	"testing"

	"github.com/Rrens/design-assistant/internal/textutil"
	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			"typical request",
			"I need a Business Card for my new shop!",
			[]string{"need", "business", "card", "new", "shop"},
		},
		{
			"duplicates removed, order preserved",
			"card card business card",
			[]string{"card", "business"},
		},
		{
			"punctuation stripped before tokenizing",
			"logo, brand-identity... (modern)",
			[]string{"logo", "brandidentity", "modern"},
		},
		{
			"short tokens dropped",
			"an ad on tv",
			nil,
		},
		{
			"empty input",
			"",
			nil,
		},
		{
			"stop words only",
			"the and or but",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textutil.ExtractKeywords(tt.input)
			if tt.expected == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
