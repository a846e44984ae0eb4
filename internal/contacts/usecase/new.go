package usecase

import (
	"eisenhower-matrix/internal/contacts"
	"eisenhower-matrix/internal/contacts/repository"
	pkgLog "eisenhower-matrix/pkg/log"
)

const defaultPageSize = 20

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates the contact book use case over the shared repository.
func New(l pkgLog.Logger, repo repository.Repository) contacts.UseCase {
	return &implUseCase{l: l, repo: repo}
}
