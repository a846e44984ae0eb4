package http

import (
	"time"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/pkg/response"
)

// --- Request DTOs ---

type loadDayReq struct {
	Date string `json:"date" binding:"required"`
}

func (r loadDayReq) validate() error {
	if _, err := time.Parse(response.DateFormat, r.Date); err != nil {
		return errInvalidDate
	}
	return nil
}

type createTaskReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Project     string `json:"project"`
	// Quadrant skips the classifier when set.
	Quadrant string `json:"quadrant"`
}

func (r createTaskReq) toInput() matrix.CreateTaskInput {
	return matrix.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Project:     r.Project,
	}
}

func (r createTaskReq) toDirectInput() matrix.DirectCreateInput {
	return matrix.DirectCreateInput{
		Title:       r.Title,
		Description: r.Description,
		Project:     r.Project,
		Quadrant:    model.Quadrant(r.Quadrant),
	}
}

type completeTaskReq struct {
	Quadrant string `json:"quadrant" binding:"required"`
}

type durationReq struct {
	Minutes int `json:"minutes"`
}

type moveTaskReq struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type editTaskReq struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Project      string `json:"project"`
	KeepOriginal bool   `json:"keep_original"`
}

type assignProjectReq struct {
	Quadrant  string `json:"quadrant" binding:"required"`
	ProjectID string `json:"project_id" binding:"required"`
}

type addLinkReq struct {
	Name    string `json:"name" binding:"required"`
	URL     string `json:"url"`
	Type    string `json:"type" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r addLinkReq) toInput() matrix.AddLinkInput {
	return matrix.AddLinkInput{
		Name:    r.Name,
		URL:     r.URL,
		Type:    model.LinkType(r.Type),
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Project         string    `json:"project"`
	Quadrant        string    `json:"quadrant"`
	Completed       bool      `json:"completed"`
	DurationMinutes *int      `json:"duration_minutes"`
	Date            string            `json:"date"`
	CreatedAt       response.DateTime `json:"created_at"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

func newTaskResp(task model.Task) taskResp {
	return taskResp{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		Project:         task.Project,
		Quadrant:        string(task.Quadrant),
		Completed:       task.Completed,
		DurationMinutes: task.DurationMinutes,
		Date:            task.Date,
		CreatedAt:       response.DateTime(task.CreatedAt),
		UpdatedAt:       response.DateTime(task.UpdatedAt),
	}
}

type linkResp struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

func newLinkResp(link model.CustomLink) linkResp {
	return linkResp{
		ID:      link.ID,
		Name:    link.Name,
		URL:     link.URL,
		Type:    string(link.Type),
		Phone:   link.Phone,
		Message: link.Message,
	}
}

type dayResp struct {
	Date        string                `json:"date"`
	Tasks       map[string][]taskResp `json:"tasks"`
	CustomLinks []linkResp            `json:"custom_links"`
}

func (h *handler) newDayResp(view matrix.DayView) dayResp {
	resp := dayResp{
		Date:        view.Date,
		Tasks:       make(map[string][]taskResp, len(view.Tasks)),
		CustomLinks: make([]linkResp, 0, len(view.CustomLinks)),
	}
	for q, tasks := range view.Tasks {
		bucket := make([]taskResp, 0, len(tasks))
		for _, task := range tasks {
			bucket = append(bucket, newTaskResp(task))
		}
		resp.Tasks[string(q)] = bucket
	}
	for _, link := range view.CustomLinks {
		resp.CustomLinks = append(resp.CustomLinks, newLinkResp(link))
	}
	return resp
}

type completeResp struct {
	Task             taskResp `json:"task"`
	AwaitingDuration bool     `json:"awaiting_duration"`
}

func (h *handler) newCompleteResp(out matrix.CompleteTaskOutput) completeResp {
	return completeResp{
		Task:             newTaskResp(out.Task),
		AwaitingDuration: out.AwaitingDuration,
	}
}

type editResp struct {
	NewTask  taskResp `json:"new_task"`
	Original taskResp `json:"original"`
}

func (h *handler) newEditResp(out matrix.EditTaskOutput) editResp {
	return editResp{
		NewTask:  newTaskResp(out.NewTask),
		Original: newTaskResp(out.Original),
	}
}

type statusResp struct {
	Syncing      bool               `json:"syncing"`
	LastSyncTime *response.DateTime `json:"last_sync_time"`
}

func newStatusResp(st matrix.SyncStatus) statusResp {
	resp := statusResp{Syncing: st.Syncing}
	if st.LastSyncTime != nil {
		at := response.DateTime(*st.LastSyncTime)
		resp.LastSyncTime = &at
	}
	return resp
}

type pendingDurationResp struct {
	Pending  bool   `json:"pending"`
	TaskID   string `json:"task_id,omitempty"`
	Quadrant string `json:"quadrant,omitempty"`
}

type projectResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type statsResp struct {
	TasksPerMinute           float64 `json:"tasks_per_minute"`
	CompletedTasksLast30Days int     `json:"completed_tasks_last_30_days"`
	Trend                    string  `json:"trend"`
	AverageTasksPerDay       float64 `json:"average_tasks_per_day"`
	TotalMinutesSpent        int     `json:"total_minutes_spent"`
}

func (h *handler) newStatsResp(out matrix.StatsOutput) statsResp {
	return statsResp{
		TasksPerMinute:           out.TasksPerMinute,
		CompletedTasksLast30Days: out.CompletedTasksLast30Days,
		Trend:                    out.Trend,
		AverageTasksPerDay:       out.AverageTasksPerDay,
		TotalMinutesSpent:        out.TotalMinutesSpent,
	}
}
