package usecase

import (
	"context"
	"strings"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
)

// EditTask edits by forking: the new attributes produce a freshly classified
// task, and the original is soft-deleted to Trash unless KeepOriginal is set.
// The new task is created first so a persistence failure leaves the original
// untouched.
func (uc *implUseCase) EditTask(ctx context.Context, sc model.Scope, input matrix.EditTaskInput) (matrix.EditTaskOutput, error) {
	unlock := uc.lockTask(input.OriginalID)
	defer unlock()
	return uc.editTask(ctx, sc, input)
}

// editTask is EditTask with the per-task lock already held by the caller.
func (uc *implUseCase) editTask(ctx context.Context, sc model.Scope, input matrix.EditTaskInput) (matrix.EditTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return matrix.EditTaskOutput{}, matrix.ErrEmptyTitle
	}

	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return matrix.EditTaskOutput{}, err
	}
	original, fromQ, ok := uc.day.FindAny(input.OriginalID)
	uc.mu.Unlock()
	if !ok {
		return matrix.EditTaskOutput{}, matrix.ErrTaskNotFound
	}

	quadrant := uc.classify(title, input.Description, input.Project)
	created, err := uc.createTask(ctx, sc, title, input.Description, input.Project, quadrant)
	if err != nil {
		return matrix.EditTaskOutput{}, err
	}

	if input.KeepOriginal {
		return matrix.EditTaskOutput{NewTask: created, Original: original}, nil
	}

	trash := model.QuadrantTrash
	done := uc.beginSync()
	_, err = uc.taskRepo.UpdateTask(ctx, original.ID, repository.UpdateTaskOptions{Quadrant: &trash})
	done(err == nil)
	if err != nil {
		// The fork already exists; report the failure and leave the original
		// in place so nothing is lost.
		uc.l.Errorf(ctx, "edit fork created %s but trashing original %s failed: %v", created.ID, original.ID, err)
		return matrix.EditTaskOutput{}, err
	}

	uc.mu.Lock()
	trashed, _ := uc.day.Move(original.ID, fromQ, model.QuadrantTrash)
	uc.clearPendingForLocked(original.ID)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	return matrix.EditTaskOutput{NewTask: created, Original: trashed}, nil
}

// AssignProject attaches a project to an existing task. Under the reclassify
// policy the task is updated in place and re-run through the classifier;
// under the fork policy it behaves like an edit that only changes the
// project.
func (uc *implUseCase) AssignProject(ctx context.Context, sc model.Scope, taskID string, quadrant model.Quadrant, projectID string) (model.Task, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return model.Task{}, matrix.ErrProjectRequired
	}
	projectName := uc.projectName(projectID)

	unlock := uc.lockTask(taskID)
	defer unlock()

	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return model.Task{}, err
	}
	task, ok := uc.day.Find(taskID, quadrant)
	uc.mu.Unlock()
	if !ok {
		return model.Task{}, matrix.ErrTaskNotFound
	}

	if uc.rulesCfg.AssignProjectPolicy == "fork" {
		out, err := uc.editTask(ctx, sc, matrix.EditTaskInput{
			OriginalID:  taskID,
			Title:       task.Title,
			Description: task.Description,
			Project:     projectName,
		})
		if err != nil {
			return model.Task{}, err
		}
		return out.NewTask, nil
	}

	newQuadrant := uc.classify(task.Title, task.Description, projectName)
	done := uc.beginSync()
	updated, err := uc.taskRepo.UpdateTask(ctx, taskID, repository.UpdateTaskOptions{
		Project:  &projectName,
		Quadrant: &newQuadrant,
	})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "assign project failed for task %s: %v", taskID, err)
		return model.Task{}, err
	}

	uc.mu.Lock()
	if newQuadrant != quadrant {
		uc.day.Move(taskID, quadrant, newQuadrant)
	}
	updated.Quadrant = newQuadrant
	uc.day.Replace(updated)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	return updated, nil
}

// projectName resolves a project id against the seeded reference data,
// falling back to the raw id for ad-hoc project names.
func (uc *implUseCase) projectName(projectID string) string {
	for _, p := range uc.projects {
		if p.ID == projectID || p.Name == projectID {
			return p.Name
		}
	}
	return projectID
}
