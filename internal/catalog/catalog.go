package catalog

import (
	"strings"

	"github.com/Rrens/design-assistant/internal/domain"
)

const (
	// DefaultLimit is applied when the caller passes no usable limit.
	DefaultLimit = 20
	// MaxLimit caps a single page to keep responses bounded.
	MaxLimit = 100
)

// SearchParams describes one catalog search.
type SearchParams struct {
	Keywords []string `json:"keywords"`
	Category string   `json:"category,omitempty"`
	Page     int      `json:"page,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

// SearchResult is a paginated slice of the catalog in stable catalog
// order. Total counts candidates before pagination.
type SearchResult struct {
	Templates  []domain.Template `json:"templates"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// Catalog is an immutable, ordered set of templates. Search is a pure
// function of the catalog and the query, so a single instance is safe
// for concurrent use.
type Catalog struct {
	templates []domain.Template
}

// New creates a catalog preserving the given order.
func New(templates []domain.Template) *Catalog {
	return &Catalog{templates: templates}
}

// Templates returns the full catalog in catalog order.
func (c *Catalog) Templates() []domain.Template {
	out := make([]domain.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Search filters the catalog by keywords and category, then paginates.
//
// Keyword matching is OR across keywords and OR across fields: a template
// is a candidate when any keyword is a case-insensitive substring of its
// name, category, or any tag. Empty keywords select the whole catalog.
// The category filter is an exact match against the stored value.
//
// Page and limit are coerced, never rejected: page < 1 becomes 1 and
// limit < 1 becomes DefaultLimit, so limit=0 cannot produce an unbounded
// totalPages.
func (c *Catalog) Search(params SearchParams) SearchResult {
	candidates := c.templates

	if len(params.Keywords) > 0 {
		filtered := make([]domain.Template, 0, len(c.templates))
		for _, tpl := range c.templates {
			if matchesAny(tpl, params.Keywords) {
				filtered = append(filtered, tpl)
			}
		}
		candidates = filtered
	}

	if params.Category != "" {
		filtered := make([]domain.Template, 0, len(candidates))
		for _, tpl := range candidates {
			if tpl.Category == params.Category {
				filtered = append(filtered, tpl)
			}
		}
		candidates = filtered
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(candidates)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]domain.Template, end-start)
	copy(items, candidates[start:end])

	return SearchResult{
		Templates:  items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
}

// FindByID returns (nil) when the id is unknown.
func (c *Catalog) FindByID(id string) *domain.Template {
	for i := range c.templates {
		if c.templates[i].ID == id {
			tpl := c.templates[i]
			return &tpl
		}
	}
	return nil
}

func matchesAny(tpl domain.Template, keywords []string) bool {
	name := strings.ToLower(tpl.Name)
	category := strings.ToLower(tpl.Category)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(name, kw) || strings.Contains(category, kw) {
			return true
		}
		for _, tag := range tpl.Tags {
			if strings.Contains(strings.ToLower(tag), kw) {
				return true
			}
		}
	}
	return false
}
