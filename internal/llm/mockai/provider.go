package mockai

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/llm"
)

// Provider is a deterministic offline provider. It is registered as the
// default when no API key is configured, so the service stays usable in
// demos and local development without external calls.
type Provider struct{}

// NewProvider creates the offline provider
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string {
	return "mock"
}

func (p *Provider) DefaultModel() string {
	return "mock-1"
}

// IsConfigured always reports true; there are no credentials.
func (p *Provider) IsConfigured() bool {
	return true
}

// Generate produces canned output. Summary prompts echo the embedded
// request back unchanged so downstream keyword extraction still sees the
// user's own words; everything else gets a fixed assistant reply naming
// the templates found in the prompt.
func (p *Provider) Generate(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	if model == "" {
		model = p.DefaultModel()
	}

	text := p.respond(req)
	return &llm.Response{
		Text:  text,
		Model: model,
	}, nil
}

func (p *Provider) respond(req llm.Request) string {
	if req.System == llm.SummarySystem {
		if input, ok := extractQuoted(req.Prompt); ok {
			return input
		}
		return req.Prompt
	}

	names := extractTemplateNames(req.Prompt)
	if len(names) == 0 {
		return "I couldn't find templates matching your request, but tell me more about what you're designing and I'll keep looking."
	}

	return "Based on your request, these templates look like a good fit: " +
		strings.Join(names, ", ") +
		". Would you like to customize any of them?"
}

// extractQuoted pulls the Go-quoted segment a prompt builder embedded
// with %q.
func extractQuoted(prompt string) (string, bool) {
	start := strings.Index(prompt, `"`)
	end := strings.LastIndex(prompt, `"`)
	if start < 0 || end <= start {
		return "", false
	}
	unquoted, err := strconv.Unquote(prompt[start : end+1])
	if err != nil {
		return "", false
	}
	return unquoted, true
}

// extractTemplateNames recovers template names from the JSON array the
// recommendation prompt embeds.
func extractTemplateNames(prompt string) []string {
	start := strings.Index(prompt, "[")
	end := strings.LastIndex(prompt, "]")
	if start < 0 || end <= start {
		return nil
	}

	var templates []domain.Template
	if err := json.Unmarshal([]byte(prompt[start:end+1]), &templates); err != nil {
		return nil
	}

	names := make([]string, 0, len(templates))
	for _, tpl := range templates {
		if tpl.Name != "" {
			names = append(names, tpl.Name)
		}
	}
	return names
}
