package domain

// Template is a catalog entry. Entries are immutable; history keeps
// denormalized copies so removing a template never breaks old entries.
type Template struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}
