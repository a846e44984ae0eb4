package contacts

import "eisenhower-matrix/internal/model"

// ContactInput is the caller-supplied part of a contact; the id is assigned
// on insert.
type ContactInput struct {
	Name     string
	Phone    string
	Category string
}

// SearchInput filters and paginates the contact list. Page is 1-based; Limit
// defaults when zero.
type SearchInput struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

// SearchOutput is one page of results.
type SearchOutput struct {
	Contacts []model.Contact
	Total    int
	HasMore  bool
}

// StatsOutput summarizes the contact list. Contacts without a category count
// under the UncategorizedBucket key.
type StatsOutput struct {
	Total      int
	ByCategory map[string]int
}

// Buckets and markers used by imports and stats.
const (
	UncategorizedBucket = "Sin categoría"
	ImportedCategory    = "Importado"
)
