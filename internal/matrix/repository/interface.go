package repository

import (
	"context"

	"eisenhower-matrix/internal/model"
)

// TaskRepository is the persistence collaborator for tasks. The server
// assigns ids and timestamps on creation.
type TaskRepository interface {
	GetTasks(ctx context.Context, userID, date string) ([]model.Task, error)
	GetTasksBetween(ctx context.Context, userID, from, to string) ([]model.Task, error)
	CreateTask(ctx context.Context, userID string, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, taskID string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// LinkRepository is the persistence collaborator for custom links. Links are
// per-user, not per-day.
type LinkRepository interface {
	GetCustomLinks(ctx context.Context, userID string) ([]model.CustomLink, error)
	CreateCustomLink(ctx context.Context, userID string, opt CreateLinkOptions) (model.CustomLink, error)
	DeleteCustomLink(ctx context.Context, linkID string) error
}

// SnapshotStore is the keyed-by-date local fallback used when the primary
// collaborator is unreachable at load time.
type SnapshotStore interface {
	Save(date string, day model.DayData) error
	// Load returns the snapshot for date; found is false when none exists.
	Load(date string) (day model.DayData, found bool, err error)
}
