package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"eisenhower-matrix/internal/contacts"
	"eisenhower-matrix/internal/model"
)

// Search filters the book case-insensitively over name, phone and category,
// then paginates. Page numbers are 1-based.
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input contacts.SearchInput) (contacts.SearchOutput, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "contact list failed: %v", err)
		return contacts.SearchOutput{}, err
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	category := strings.ToLower(strings.TrimSpace(input.Category))

	matched := make([]model.Contact, 0, len(all))
	for _, c := range all {
		if category != "" && strings.ToLower(c.Category) != category {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		matched = append(matched, c)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return contacts.SearchOutput{
		Contacts: matched[start:end],
		Total:    len(matched),
		HasMore:  end < len(matched),
	}, nil
}

func matchesQuery(c model.Contact, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Phone), query) ||
		strings.Contains(strings.ToLower(c.Category), query)
}

func (uc *implUseCase) GetByID(ctx context.Context, sc model.Scope, id string) (model.Contact, error) {
	contact, found, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "contact lookup failed for %s: %v", id, err)
		return model.Contact{}, err
	}
	if !found {
		return model.Contact{}, contacts.ErrContactNotFound
	}
	return contact, nil
}

func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input contacts.ContactInput) (model.Contact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Contact{}, contacts.ErrNameRequired
	}
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return model.Contact{}, contacts.ErrPhoneRequired
	}

	contact := model.Contact{
		ID:       uuid.NewString(),
		Name:     name,
		Phone:    normalizePhone(phone),
		Category: strings.TrimSpace(input.Category),
	}
	if err := uc.repo.Insert(ctx, contact); err != nil {
		uc.l.Errorf(ctx, "contact insert failed: %v", err)
		return model.Contact{}, err
	}
	return contact, nil
}

// Import inserts a batch, skipping entries without a name or phone rather
// than failing the whole batch.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, inputs []contacts.ContactInput) ([]model.Contact, error) {
	inserted := make([]model.Contact, 0, len(inputs))
	for _, input := range inputs {
		contact, err := uc.Add(ctx, sc, input)
		if err != nil {
			if errors.Is(err, contacts.ErrNameRequired) || errors.Is(err, contacts.ErrPhoneRequired) {
				uc.l.Warnf(ctx, "skipping invalid contact %q during import", input.Name)
				continue
			}
			return inserted, err
		}
		inserted = append(inserted, contact)
	}
	return inserted, nil
}

func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (contacts.StatsOutput, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "contact list failed: %v", err)
		return contacts.StatsOutput{}, err
	}

	out := contacts.StatsOutput{
		Total:      len(all),
		ByCategory: make(map[string]int),
	}
	for _, c := range all {
		category := c.Category
		if category == "" {
			category = contacts.UncategorizedBucket
		}
		out.ByCategory[category]++
	}
	return out, nil
}
