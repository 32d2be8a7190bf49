package textutil

import (
	"regexp"
	"strings"
)

// stopWords are dropped during keyword extraction. Kept deliberately
// small; the catalog search is recall-favoring anyway.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {},
}

var nonWord = regexp.MustCompile(`[^a-zA-Z0-9_\s]`)

// ExtractKeywords turns free text into search keywords: lowercase, strip
// punctuation, split on whitespace, drop stop words and tokens of length
// <= 2, dedupe preserving first occurrence.
func ExtractKeywords(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), "")

	seen := make(map[string]struct{})
	keywords := make([]string, 0, 8)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}
	return keywords
}
