package usecase

import (
	"context"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
)

// DeleteTask soft-deletes by moving the task to Trash. Deleting a task that
// is already in Trash removes it permanently.
func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, taskID string, quadrant model.Quadrant) error {
	unlock := uc.lockTask(taskID)
	defer unlock()

	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return err
	}
	_, ok := uc.day.Find(taskID, quadrant)
	uc.mu.Unlock()
	if !ok {
		return matrix.ErrTaskNotFound
	}

	if quadrant == model.QuadrantTrash {
		done := uc.beginSync()
		err := uc.taskRepo.DeleteTask(ctx, taskID)
		done(err == nil)
		if err != nil {
			uc.l.Errorf(ctx, "hard delete failed for task %s: %v", taskID, err)
			return err
		}

		uc.mu.Lock()
		uc.day.Remove(taskID, quadrant)
		uc.clearPendingForLocked(taskID)
		uc.saveSnapshotLocked(ctx)
		uc.mu.Unlock()
		return nil
	}

	trash := model.QuadrantTrash
	done := uc.beginSync()
	_, err := uc.taskRepo.UpdateTask(ctx, taskID, repository.UpdateTaskOptions{Quadrant: &trash})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "soft delete failed for task %s: %v", taskID, err)
		return err
	}

	uc.mu.Lock()
	uc.day.Move(taskID, quadrant, model.QuadrantTrash)
	uc.clearPendingForLocked(taskID)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()
	return nil
}

// MoveTask relocates a task between quadrants. The quadrant field and the
// collection membership change together; no other attribute is touched.
func (uc *implUseCase) MoveTask(ctx context.Context, sc model.Scope, taskID string, from, to model.Quadrant) (model.Task, error) {
	if _, err := model.ParseQuadrant(string(to)); err != nil {
		return model.Task{}, matrix.ErrInvalidQuadrant
	}

	unlock := uc.lockTask(taskID)
	defer unlock()

	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return model.Task{}, err
	}
	task, ok := uc.day.Find(taskID, from)
	uc.mu.Unlock()
	if !ok {
		return model.Task{}, matrix.ErrTaskNotFound
	}
	if from == to {
		return task, nil
	}

	done := uc.beginSync()
	updated, err := uc.taskRepo.UpdateTask(ctx, taskID, repository.UpdateTaskOptions{Quadrant: &to})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "move failed for task %s: %v", taskID, err)
		return model.Task{}, err
	}

	uc.mu.Lock()
	moved, _ := uc.day.Move(taskID, from, to)
	uc.clearPendingForLocked(taskID)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	updated.Quadrant = to
	if moved.ID != "" {
		return moved, nil
	}
	return updated, nil
}

// MarkDelegated completes a task sitting in the Delegate quadrant, recording
// the handoff. Tasks elsewhere are rejected.
func (uc *implUseCase) MarkDelegated(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	unlock := uc.lockTask(taskID)
	defer unlock()

	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return model.Task{}, err
	}
	_, q, ok := uc.day.FindAny(taskID)
	uc.mu.Unlock()
	if !ok {
		return model.Task{}, matrix.ErrTaskNotFound
	}
	if q != model.QuadrantDelegate {
		return model.Task{}, matrix.ErrNotInDelegate
	}

	completed := true
	done := uc.beginSync()
	updated, err := uc.taskRepo.UpdateTask(ctx, taskID, repository.UpdateTaskOptions{Completed: &completed})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "mark delegated failed for task %s: %v", taskID, err)
		return model.Task{}, err
	}

	updated.Quadrant = model.QuadrantDelegate
	uc.mu.Lock()
	uc.day.Replace(updated)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	return updated, nil
}

// clearPendingForLocked drops the duration prompt when its subject task goes
// away. Callers hold uc.mu.
func (uc *implUseCase) clearPendingForLocked(taskID string) {
	if uc.pending != nil && uc.pending.TaskID == taskID {
		uc.pending = nil
	}
}
