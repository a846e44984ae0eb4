package usecase

import (
	"context"
	"strings"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/pkg/whatsapp"
)

// AddCustomLink validates and persists a quick-access link. WhatsApp links
// derive their URL from phone+message; every other type supplies one.
func (uc *implUseCase) AddCustomLink(ctx context.Context, sc model.Scope, input matrix.AddLinkInput) (model.CustomLink, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.CustomLink{}, matrix.ErrLinkNameRequired
	}

	url := strings.TrimSpace(input.URL)
	if input.Type == model.LinkTypeWhatsApp {
		message := strings.TrimSpace(input.Message)
		if message == "" {
			return model.CustomLink{}, matrix.ErrMessageRequired
		}
		url = whatsapp.BuildURL(input.Phone, message)
	} else if url == "" {
		return model.CustomLink{}, matrix.ErrURLRequired
	}

	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return model.CustomLink{}, err
	}
	uc.mu.Unlock()

	done := uc.beginSync()
	created, err := uc.linkRepo.CreateCustomLink(ctx, sc.UserID, repository.CreateLinkOptions{
		Name:    name,
		URL:     url,
		Type:    input.Type,
		Phone:   input.Phone,
		Message: input.Message,
	})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "create custom link failed: %v", err)
		return model.CustomLink{}, err
	}

	uc.mu.Lock()
	uc.day.AddLink(created)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	return created, nil
}

// DeleteCustomLink removes a link permanently. Links have no trash stage.
func (uc *implUseCase) DeleteCustomLink(ctx context.Context, sc model.Scope, linkID string) error {
	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return err
	}
	found := false
	for _, link := range uc.day.Links() {
		if link.ID == linkID {
			found = true
			break
		}
	}
	uc.mu.Unlock()
	if !found {
		return matrix.ErrLinkNotFound
	}

	done := uc.beginSync()
	err := uc.linkRepo.DeleteCustomLink(ctx, linkID)
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "delete custom link %s failed: %v", linkID, err)
		return err
	}

	uc.mu.Lock()
	uc.day.RemoveLink(linkID)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()
	return nil
}
