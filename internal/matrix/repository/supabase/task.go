package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
	pkgLog "eisenhower-matrix/pkg/log"
)

type implTaskRepository struct {
	client *Client
	l      pkgLog.Logger
}

// NewTaskRepository creates the Supabase-backed task repository.
func NewTaskRepository(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implTaskRepository{client: client, l: l}
}

func (r *implTaskRepository) GetTasks(ctx context.Context, userID, date string) ([]model.Task, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("date", "eq."+date)
	query.Set("order", "created_at.asc")
	query.Set("select", "*")

	var rows []taskRow
	if err := r.client.do(ctx, http.MethodGet, "tasks", query.Encode(), nil, &rows); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to list tasks for %s: %v", date, err)
		return nil, err
	}
	return rowsToTasks(rows), nil
}

func (r *implTaskRepository) GetTasksBetween(ctx context.Context, userID, from, to string) ([]model.Task, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("order", "created_at.asc")
	query.Set("select", "*")
	query.Add("and", fmt.Sprintf("(date.gte.%s,date.lte.%s)", from, to))

	var rows []taskRow
	if err := r.client.do(ctx, http.MethodGet, "tasks", query.Encode(), nil, &rows); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to list tasks between %s and %s: %v", from, to, err)
		return nil, err
	}
	return rowsToTasks(rows), nil
}

func (r *implTaskRepository) CreateTask(ctx context.Context, userID string, opt repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	body := taskInsert{
		UserID:      userID,
		Title:       opt.Title,
		Description: opt.Description,
		Project:     opt.Project,
		Quadrant:    string(opt.Quadrant),
		Completed:   opt.Completed,
		Date:        opt.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// PostgREST returns the inserted rows as an array.
	var rows []taskRow
	if err := r.client.do(ctx, http.MethodPost, "tasks", "", body, &rows); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to create task: %v", err)
		return model.Task{}, err
	}
	if len(rows) == 0 {
		return model.Task{}, fmt.Errorf("supabase create task: empty representation returned")
	}
	return rows[0].toTask(), nil
}

func (r *implTaskRepository) UpdateTask(ctx context.Context, taskID string, opt repository.UpdateTaskOptions) (model.Task, error) {
	patch := map[string]any{
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	if opt.Completed != nil {
		patch["completed"] = *opt.Completed
	}
	if opt.Quadrant != nil {
		patch["quadrant"] = string(*opt.Quadrant)
	}
	if opt.Project != nil {
		patch["project"] = *opt.Project
	}
	if opt.DurationMinutes != nil {
		patch["duration_minutes"] = *opt.DurationMinutes
	}
	if opt.ClearDuration {
		patch["duration_minutes"] = nil
	}

	query := url.Values{}
	query.Set("id", "eq."+taskID)

	var rows []taskRow
	if err := r.client.do(ctx, http.MethodPatch, "tasks", query.Encode(), patch, &rows); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to update task %s: %v", taskID, err)
		return model.Task{}, err
	}
	if len(rows) == 0 {
		return model.Task{}, fmt.Errorf("supabase update task %s: no row returned", taskID)
	}
	return rows[0].toTask(), nil
}

func (r *implTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	query := url.Values{}
	query.Set("id", "eq."+taskID)

	if err := r.client.do(ctx, http.MethodDelete, "tasks", query.Encode(), nil, nil); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to delete task %s: %v", taskID, err)
		return err
	}
	return nil
}

// ---- Wire types (column names fixed by the tasks table schema) ----

type taskInsert struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Project     string `json:"project,omitempty"`
	Quadrant    string `json:"quadrant"`
	Completed   bool   `json:"completed"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type taskRow struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Project         string `json:"project"`
	Quadrant        string `json:"quadrant"`
	Completed       bool   `json:"completed"`
	DurationMinutes *int   `json:"duration_minutes"`
	Date            string `json:"date"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func (row taskRow) toTask() model.Task {
	createdAt, _ := time.Parse(time.RFC3339, row.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, row.UpdatedAt)
	return model.Task{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		Project:         row.Project,
		Quadrant:        model.Quadrant(row.Quadrant),
		Completed:       row.Completed,
		DurationMinutes: row.DurationMinutes,
		Date:            row.Date,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

func rowsToTasks(rows []taskRow) []model.Task {
	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toTask())
	}
	return tasks
}
