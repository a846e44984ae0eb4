package usecase

import (
	"context"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
)

// Duration bounds for the capture flow, matching the UI slider range.
const (
	minDurationMinutes = 0
	maxDurationMinutes = 480
)

// CompleteTask toggles completion. Toggling an incomplete task to complete in
// a duration-capturing quadrant opens the capture flow instead of finishing:
// nothing is persisted or mutated until SubmitDuration. Un-completing always
// clears the recorded duration, in every quadrant.
func (uc *implUseCase) CompleteTask(ctx context.Context, sc model.Scope, taskID string, quadrant model.Quadrant) (matrix.CompleteTaskOutput, error) {
	unlock := uc.lockTask(taskID)
	defer unlock()

	uc.mu.Lock()
	if err := uc.requireDayLocked(); err != nil {
		uc.mu.Unlock()
		return matrix.CompleteTaskOutput{}, err
	}
	task, ok := uc.day.Find(taskID, quadrant)
	if !ok {
		uc.mu.Unlock()
		return matrix.CompleteTaskOutput{}, matrix.ErrTaskNotFound
	}

	if !task.Completed && uc.requiresDuration(quadrant) {
		uc.pending = &matrix.DurationPrompt{TaskID: taskID, Quadrant: quadrant}
		uc.mu.Unlock()
		return matrix.CompleteTaskOutput{Task: task, AwaitingDuration: true}, nil
	}
	uc.mu.Unlock()

	completed := !task.Completed
	done := uc.beginSync()
	updated, err := uc.taskRepo.UpdateTask(ctx, taskID, repository.UpdateTaskOptions{
		Completed:     &completed,
		ClearDuration: !completed,
	})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "complete toggle failed for task %s: %v", taskID, err)
		return matrix.CompleteTaskOutput{}, err
	}

	updated.Quadrant = quadrant
	uc.mu.Lock()
	uc.day.Replace(updated)
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	return matrix.CompleteTaskOutput{Task: updated}, nil
}

// SubmitDuration finalizes the pending duration capture: the task becomes
// completed with the captured minutes, persisted and applied as a unit.
func (uc *implUseCase) SubmitDuration(ctx context.Context, sc model.Scope, minutes int) (model.Task, error) {
	if minutes < minDurationMinutes || minutes > maxDurationMinutes {
		return model.Task{}, matrix.ErrDurationOutOfRange
	}

	uc.mu.Lock()
	if uc.pending == nil {
		uc.mu.Unlock()
		return model.Task{}, matrix.ErrNoDurationPending
	}
	prompt := *uc.pending
	uc.mu.Unlock()

	unlock := uc.lockTask(prompt.TaskID)
	defer unlock()

	completed := true
	done := uc.beginSync()
	updated, err := uc.taskRepo.UpdateTask(ctx, prompt.TaskID, repository.UpdateTaskOptions{
		Completed:       &completed,
		DurationMinutes: &minutes,
	})
	done(err == nil)
	if err != nil {
		uc.l.Errorf(ctx, "duration submit failed for task %s: %v", prompt.TaskID, err)
		return model.Task{}, err
	}

	updated.Quadrant = prompt.Quadrant
	uc.mu.Lock()
	uc.day.Replace(updated)
	uc.pending = nil
	uc.saveSnapshotLocked(ctx)
	uc.mu.Unlock()

	return updated, nil
}

// CancelDuration abandons the pending capture. The task keeps completed=false
// and stays in its quadrant; cancelling with nothing pending is a no-op.
func (uc *implUseCase) CancelDuration(ctx context.Context, sc model.Scope) error {
	uc.mu.Lock()
	uc.pending = nil
	uc.mu.Unlock()
	return nil
}

// PendingDuration reports the task awaiting duration capture, if any.
func (uc *implUseCase) PendingDuration() (matrix.DurationPrompt, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.pending == nil {
		return matrix.DurationPrompt{}, false
	}
	return *uc.pending, true
}
