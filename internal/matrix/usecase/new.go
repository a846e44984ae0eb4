package usecase

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"eisenhower-matrix/config"
	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/matrix/store"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/internal/rules"
	pkgLog "eisenhower-matrix/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	taskRepo  repository.TaskRepository
	linkRepo  repository.LinkRepository
	snapshots repository.SnapshotStore
	classify  rules.ClassifierFunc
	rulesCfg  config.RulesConfig
	projects  []model.Project
	now       func() time.Time

	// mu guards day, pending and lastSync. The session is single-user but the
	// HTTP shell delivers requests concurrently.
	mu       sync.Mutex
	day      *store.DayStore
	pending  *matrix.DurationPrompt
	lastSync *time.Time

	inFlight  atomic.Int32
	taskLocks sync.Map // task id -> *sync.Mutex
}

// New creates the task lifecycle manager. Projects are seeded once and stay
// immutable for the lifetime of the session.
func New(
	l pkgLog.Logger,
	taskRepo repository.TaskRepository,
	linkRepo repository.LinkRepository,
	snapshots repository.SnapshotStore,
	rulesCfg config.RulesConfig,
	projectNames []string,
) (matrix.UseCase, error) {
	classify, err := rules.Classifier(rulesCfg.ClassifierVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}

	projects := make([]model.Project, 0, len(projectNames))
	for _, name := range projectNames {
		projects = append(projects, model.Project{
			ID:   projectIDFromName(name),
			Name: name,
		})
	}

	return &implUseCase{
		l:         l,
		taskRepo:  taskRepo,
		linkRepo:  linkRepo,
		snapshots: snapshots,
		classify:  classify,
		rulesCfg:  rulesCfg,
		projects:  projects,
		now:       time.Now,
	}, nil
}

func (uc *implUseCase) Projects() []model.Project {
	return append([]model.Project(nil), uc.projects...)
}

func projectIDFromName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
