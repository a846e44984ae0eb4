package repository

import (
	"context"

	"eisenhower-matrix/internal/model"
)

// Repository stores contacts. Construct once and share by reference; every
// caller sees the same book.
type Repository interface {
	List(ctx context.Context) ([]model.Contact, error)
	GetByID(ctx context.Context, id string) (model.Contact, bool, error)
	Insert(ctx context.Context, contact model.Contact) error
}
