package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Rrens/design-assistant/internal/api/response"
	"github.com/Rrens/design-assistant/internal/catalog"
)

// TemplateHandler handles catalog search endpoints
type TemplateHandler struct {
	catalog *catalog.Catalog
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(cat *catalog.Catalog) *TemplateHandler {
	return &TemplateHandler{catalog: cat}
}

// Search handles the public GET search. The query string is split on
// whitespace into keywords; page and limit fall back to defaults on any
// unparsable value.
func (h *TemplateHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := catalog.SearchParams{
		Keywords: strings.Fields(q.Get("query")),
		Category: q.Get("category"),
		Page:     atoiDefault(q.Get("page"), 1),
		Limit:    atoiDefault(q.Get("limit"), catalog.DefaultLimit),
	}

	response.OK(w, h.catalog.Search(params))
}

// SearchPost handles the authenticated structured search.
func (h *TemplateHandler) SearchPost(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Keywords []string `json:"keywords"`
		Filters  struct {
			Category string `json:"category"`
			Page     int    `json:"page"`
			Limit    int    `json:"limit"`
		} `json:"filters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if input.Keywords == nil {
		response.BadRequest(w, "keywords array is required")
		return
	}

	result := h.catalog.Search(catalog.SearchParams{
		Keywords: input.Keywords,
		Category: input.Filters.Category,
		Page:     input.Filters.Page,
		Limit:    input.Filters.Limit,
	})

	response.OK(w, result)
}

// atoiDefault parses s, falling back to def for anything unusable.
// Catalog search re-coerces non-positive values anyway.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
