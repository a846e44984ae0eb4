package model

// Contact is a delegation contact. Contacts live outside any day and are
// shared across dates.
type Contact struct {
	ID       string
	Name     string
	Phone    string
	Category string
}
