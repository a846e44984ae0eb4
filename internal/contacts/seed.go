package contacts

import (
	"github.com/google/uuid"

	"eisenhower-matrix/internal/model"
)

// DefaultSeed returns the starter contact book used when no import has
// happened yet.
func DefaultSeed() []model.Contact {
	names := []struct {
		name     string
		phone    string
		category string
	}{
		{"Ana García", "+5491155550001", "Trabajo"},
		{"Bruno Díaz", "+5491155550002", "Trabajo"},
		{"Carla Méndez", "+5491155550003", "Familia"},
	}
	seed := make([]model.Contact, 0, len(names))
	for _, n := range names {
		seed = append(seed, model.Contact{
			ID:       uuid.NewString(),
			Name:     n.name,
			Phone:    n.phone,
			Category: n.category,
		})
	}
	return seed
}
