package repository

import "eisenhower-matrix/internal/model"

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title       string
	Description string
	Project     string
	Quadrant    model.Quadrant
	Completed   bool
	Date        string // ISO day key the task belongs to
}

// UpdateTaskOptions is a partial update. Nil fields are left untouched;
// ClearDuration explicitly nulls duration_minutes (used when un-completing).
type UpdateTaskOptions struct {
	Completed       *bool
	Quadrant        *model.Quadrant
	Project         *string
	DurationMinutes *int
	ClearDuration   bool
}

// CreateLinkOptions holds the parameters for creating a custom link. URL is
// the final URL (WhatsApp deep links are built before this point).
type CreateLinkOptions struct {
	Name    string
	URL     string
	Type    model.LinkType
	Phone   string
	Message string
}
