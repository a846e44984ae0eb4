package usecase

import (
	"fmt"
	"sync"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/rules"
	"eisenhower-matrix/internal/wizard"
	pkgLog "eisenhower-matrix/pkg/log"
)

type session struct {
	step    wizard.Step
	draft   wizard.Draft
	answers rules.WizardAnswers
}

type implUseCase struct {
	l         pkgLog.Logger
	matrixUC  matrix.UseCase
	recommend rules.WizardFunc

	mu      sync.Mutex
	session *session
}

// New creates the wizard. The matrix use case is the collaborator that
// ultimately owns the created task.
func New(l pkgLog.Logger, matrixUC matrix.UseCase, tableVersion string) (wizard.UseCase, error) {
	if tableVersion == "" {
		tableVersion = rules.WizardDefault
	}
	recommend, err := rules.WizardTable(tableVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to build wizard table: %w", err)
	}
	return &implUseCase{
		l:         l,
		matrixUC:  matrixUC,
		recommend: recommend,
	}, nil
}
