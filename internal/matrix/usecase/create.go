package usecase

import (
	"context"
	"strings"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
)

// CreateTask classifies the new task and persists it before any local state
// changes. On persistence failure nothing is inserted locally.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input matrix.CreateTaskInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, matrix.ErrEmptyTitle
	}

	quadrant := uc.classify(title, input.Description, input.Project)
	return uc.createTask(ctx, sc, title, input.Description, input.Project, quadrant)
}

// CreateTaskDirect places the task straight into the given quadrant without
// consulting the classifier. The wizard's terminal action uses this.
func (uc *implUseCase) CreateTaskDirect(ctx context.Context, sc model.Scope, input matrix.DirectCreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, matrix.ErrEmptyTitle
	}
	quadrant, err := model.ParseQuadrant(string(input.Quadrant))
	if err != nil {
		return model.Task{}, matrix.ErrInvalidQuadrant
	}
	return uc.createTask(ctx, sc, title, input.Description, input.Project, quadrant)
}

func (uc *implUseCase) createTask(ctx context.Context, sc model.Scope, title, description, project string, quadrant model.Quadrant) (model.Task, error) {
	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return model.Task{}, err
	}
	date := uc.day.Date()
	uc.mu.Unlock()

	done := uc.beginSync()
	created, err := uc.taskRepo.CreateTask(ctx, sc.UserID, repository.CreateTaskOptions{
		Title:       title,
		Description: description,
		Project:     project,
		Quadrant:    quadrant,
		Completed:   false,
		Date:        date,
	})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "create task failed: %v", err)
		return model.Task{}, err
	}

	// The server assigned the real id; only now does the task enter the day.
	created.Quadrant = quadrant
	uc.mu.Lock()
	uc.day.Insert(created)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	return created, nil
}
