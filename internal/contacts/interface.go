package contacts

import (
	"context"

	"eisenhower-matrix/internal/model"
)

// UseCase manages the delegation contact book.
type UseCase interface {
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)
	GetByID(ctx context.Context, sc model.Scope, id string) (model.Contact, error)
	Add(ctx context.Context, sc model.Scope, input ContactInput) (model.Contact, error)
	// Import inserts a batch, assigning ids; invalid entries are skipped and
	// the inserted contacts returned.
	Import(ctx context.Context, sc model.Scope, inputs []ContactInput) ([]model.Contact, error)
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	// ParseVCard extracts contact inputs from vCard text. Parsed contacts are
	// not inserted; pass them to Import.
	ParseVCard(raw string) []ContactInput
}
