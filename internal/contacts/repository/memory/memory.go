// Package memory is the in-process contact store. The contact book is small
// reference data; it needs sharing, not persistence.
package memory

import (
	"context"
	"sync"

	"eisenhower-matrix/internal/contacts/repository"
	"eisenhower-matrix/internal/model"
)

type implRepository struct {
	mu       sync.RWMutex
	contacts []model.Contact
	byID     map[string]int
}

// New creates the store pre-filled with the seed contacts.
func New(seed []model.Contact) repository.Repository {
	repo := &implRepository{
		contacts: make([]model.Contact, 0, len(seed)),
		byID:     make(map[string]int, len(seed)),
	}
	for _, c := range seed {
		repo.byID[c.ID] = len(repo.contacts)
		repo.contacts = append(repo.contacts, c)
	}
	return repo
}

func (r *implRepository) List(ctx context.Context) ([]model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Contact(nil), r.contacts...), nil
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.Contact, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return model.Contact{}, false, nil
	}
	return r.contacts[idx], true, nil
}

func (r *implRepository) Insert(ctx context.Context, contact model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[contact.ID] = len(r.contacts)
	r.contacts = append(r.contacts, contact)
	return nil
}
