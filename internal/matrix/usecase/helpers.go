package usecase

import (
	"context"
	"sync"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/model"
)

// lockTask serializes mutating operations per task id. Overlapping edits to
// different tasks proceed concurrently; two writes to the same task queue up.
func (uc *implUseCase) lockTask(id string) func() {
	v, _ := uc.taskLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// beginSync marks a persistence call in flight; the returned func ends it and
// records the sync time when the call succeeded.
func (uc *implUseCase) beginSync() func(ok bool) {
	uc.inFlight.Add(1)
	return func(ok bool) {
		uc.inFlight.Add(-1)
		if ok {
			now := uc.now()
			uc.mu.Lock()
			uc.lastSync = &now
			uc.mu.Unlock()
		}
	}
}

// requireDayLocked returns the active day store; callers hold uc.mu.
func (uc *implUseCase) requireDayLocked() error {
	if uc.day == nil {
		return matrix.ErrNoDayLoaded
	}
	return nil
}

// requiresDuration reports whether completing a task in quadrant q must go
// through the duration-capture flow, per the configured policy.
func (uc *implUseCase) requiresDuration(q model.Quadrant) bool {
	if uc.rulesCfg.DurationCapture == "all" {
		return q != model.QuadrantTrash
	}
	return q == model.QuadrantDoNow
}

// saveSnapshotLocked writes the current day through to the local fallback
// store. Failures are logged only; the fallback is best effort.
func (uc *implUseCase) saveSnapshotLocked(ctx context.Context) {
	if uc.day == nil {
		return
	}
	snap := uc.day.Snapshot()
	if err := uc.snapshots.Save(snap.Date, snap); err != nil {
		uc.l.Warnf(ctx, "failed to save local snapshot for %s: %v", snap.Date, err)
	}
}

// viewLocked builds the display-ordered view of the active day.
func (uc *implUseCase) viewLocked() matrix.DayView {
	view := matrix.DayView{
		Date:        uc.day.Date(),
		Tasks:       make(map[model.Quadrant][]model.Task, len(model.AllQuadrants)),
		CustomLinks: uc.day.Links(),
	}
	for _, q := range model.AllQuadrants {
		view.Tasks[q] = uc.day.TasksForDisplay(q)
	}
	return view
}
