package matrix

import (
	"time"

	"eisenhower-matrix/internal/model"
)

// CreateTaskInput is the input for classifier-driven task creation.
type CreateTaskInput struct {
	Title       string
	Description string
	Project     string
}

// DirectCreateInput creates a task straight into a caller-chosen quadrant,
// bypassing the classifier. Used by the recommendation wizard.
type DirectCreateInput struct {
	Title       string
	Description string
	Project     string
	Quadrant    model.Quadrant
}

// EditTaskInput forks a task: a new task is classified from the new
// attributes, the original either stays put or is soft-deleted.
type EditTaskInput struct {
	OriginalID   string
	Title        string
	Description  string
	Project      string
	KeepOriginal bool
}

// EditTaskOutput reports both halves of the fork.
type EditTaskOutput struct {
	NewTask  model.Task
	Original model.Task // post-edit state; in Trash when KeepOriginal was false
}

// CompleteTaskOutput is the result of a completion toggle. When
// AwaitingDuration is true nothing was persisted yet: the caller must submit
// or cancel the duration capture.
type CompleteTaskOutput struct {
	Task             model.Task
	AwaitingDuration bool
}

// DurationPrompt identifies the task a duration capture is pending for.
type DurationPrompt struct {
	TaskID   string
	Quadrant model.Quadrant
}

// AddLinkInput is the input for creating a custom link. For WhatsApp links
// the URL is derived from phone+message, not supplied.
type AddLinkInput struct {
	Name    string
	URL     string
	Type    model.LinkType
	Phone   string
	Message string
}

// DayView is the presentation-ordered view of the active day.
type DayView struct {
	Date        string
	Tasks       map[model.Quadrant][]model.Task
	CustomLinks []model.CustomLink
}

// SyncStatus reports the in-flight persistence state of the session.
type SyncStatus struct {
	Syncing      bool
	LastSyncTime *time.Time
}

// Trend directions for completed-task counts between the two stat windows.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// StatsOutput aggregates completion activity over the trailing 30-day window
// against the prior 30-day window.
type StatsOutput struct {
	TasksPerMinute           float64
	CompletedTasksLast30Days int
	Trend                    string
	AverageTasksPerDay       float64
	TotalMinutesSpent        int
}
