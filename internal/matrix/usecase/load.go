package usecase

import (
	"context"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/matrix/store"
	"eisenhower-matrix/internal/model"
)

// LoadDay fetches tasks and links for date from the persistence collaborator
// and partitions them into quadrant collections. A load failure is not fatal:
// the local snapshot for the date is restored when one exists, else the day
// starts empty.
func (uc *implUseCase) LoadDay(ctx context.Context, sc model.Scope, date string) (matrix.DayView, error) {
	done := uc.beginSync()

	tasks, tasksErr := uc.taskRepo.GetTasks(ctx, sc.UserID, date)
	var links []model.CustomLink
	var linksErr error
	if tasksErr == nil {
		links, linksErr = uc.linkRepo.GetCustomLinks(ctx, sc.UserID)
	}
	loadOK := tasksErr == nil && linksErr == nil
	done(loadOK)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.day == nil {
		uc.day = store.New(date)
	}

	if !loadOK {
		if tasksErr != nil {
			uc.l.Warnf(ctx, "day load failed for %s, using fallback: %v", date, tasksErr)
		} else {
			uc.l.Warnf(ctx, "link load failed for %s, using fallback: %v", date, linksErr)
		}

		snap, found, err := uc.snapshots.Load(date)
		if err != nil {
			uc.l.Warnf(ctx, "local snapshot read failed for %s: %v", date, err)
		}
		if found {
			uc.day.Restore(snap)
		} else {
			uc.day.Reset(date)
		}
		return uc.viewLocked(), nil
	}

	if dropped := uc.day.Populate(date, tasks, links); dropped > 0 {
		uc.l.Warnf(ctx, "dropped %d tasks with unrecognized quadrants on %s", dropped, date)
	}
	uc.saveSnapshotLocked(ctx)

	return uc.viewLocked(), nil
}

// SwitchDate abandons the active date — nothing carries over — and performs a
// fresh load of the new one.
func (uc *implUseCase) SwitchDate(ctx context.Context, sc model.Scope, date string) (matrix.DayView, error) {
	uc.mu.Lock()
	if uc.day != nil {
		uc.day.Reset(date)
	}
	uc.pending = nil
	uc.mu.Unlock()

	return uc.LoadDay(ctx, sc, date)
}

// Day returns the currently loaded day in display order.
func (uc *implUseCase) Day(ctx context.Context, sc model.Scope) (matrix.DayView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.requireDayLocked(); err != nil {
		return matrix.DayView{}, err
	}
	return uc.viewLocked(), nil
}

// Status reports the in-flight persistence state.
func (uc *implUseCase) Status() matrix.SyncStatus {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return matrix.SyncStatus{
		Syncing:      uc.inFlight.Load() > 0,
		LastSyncTime: uc.lastSync,
	}
}
