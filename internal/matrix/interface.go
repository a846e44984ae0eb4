package matrix

import (
	"context"

	"eisenhower-matrix/internal/model"
)

// UseCase is the task lifecycle manager: every mutating operation on tasks
// and links goes through here, which is what keeps the one-quadrant invariant
// intact. Persistence and in-memory state are treated as a unit — when the
// collaborator fails, no local change is retained.
type UseCase interface {
	// LoadDay fetches the given date from persistence, falling back to the
	// local snapshot (else an empty day) when the collaborator is down.
	LoadDay(ctx context.Context, sc model.Scope, date string) (DayView, error)
	// SwitchDate abandons the active date entirely and loads the new one.
	SwitchDate(ctx context.Context, sc model.Scope, date string) (DayView, error)
	// Day returns the currently loaded day in display order.
	Day(ctx context.Context, sc model.Scope) (DayView, error)
	// Status reports whether a persistence call is in flight.
	Status() SyncStatus

	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)
	CreateTaskDirect(ctx context.Context, sc model.Scope, input DirectCreateInput) (model.Task, error)
	CompleteTask(ctx context.Context, sc model.Scope, taskID string, quadrant model.Quadrant) (CompleteTaskOutput, error)
	SubmitDuration(ctx context.Context, sc model.Scope, minutes int) (model.Task, error)
	CancelDuration(ctx context.Context, sc model.Scope) error
	PendingDuration() (DurationPrompt, bool)
	DeleteTask(ctx context.Context, sc model.Scope, taskID string, quadrant model.Quadrant) error
	MoveTask(ctx context.Context, sc model.Scope, taskID string, from, to model.Quadrant) (model.Task, error)
	EditTask(ctx context.Context, sc model.Scope, input EditTaskInput) (EditTaskOutput, error)
	AssignProject(ctx context.Context, sc model.Scope, taskID string, quadrant model.Quadrant, projectID string) (model.Task, error)
	MarkDelegated(ctx context.Context, sc model.Scope, taskID string) (model.Task, error)

	AddCustomLink(ctx context.Context, sc model.Scope, input AddLinkInput) (model.CustomLink, error)
	DeleteCustomLink(ctx context.Context, sc model.Scope, linkID string) error

	// Projects returns the immutable project reference data seeded at startup.
	Projects() []model.Project

	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
