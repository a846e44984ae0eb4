package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/matrix"
	"eisenhower-matrix/internal/middleware"
	"eisenhower-matrix/internal/model"
	"eisenhower-matrix/pkg/response"
)

// CreateTask godoc
// @Summary     Create a task
// @Description Creates a task. Without a quadrant the classifier places it;
// @Description with one it is placed directly.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	sc := middleware.ScopeFromContext(c)

	var task model.Task
	if req.Quadrant != "" {
		task, err = h.uc.CreateTaskDirect(ctx, sc, req.toDirectInput())
	} else {
		task, err = h.uc.CreateTask(ctx, sc, req.toInput())
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// CompleteTask godoc
// @Summary     Toggle task completion
// @Description Toggles completion. Completing in the primary quadrant opens
// @Description the duration capture instead of finishing immediately.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Task ID"
// @Param       body body completeTaskReq true "Quadrant the task is in"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CompleteTask(ctx, middleware.ScopeFromContext(c), c.Param("id"), model.Quadrant(req.Quadrant))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompleteResp(out))
}

// PendingDuration godoc
// @Summary     Pending duration capture
// @Description Reports the task awaiting a duration, if any.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} pendingDurationResp
// @Router      /api/v1/tasks/duration [GET]
func (h *handler) PendingDuration(c *gin.Context) {
	prompt, pending := h.uc.PendingDuration()
	resp := pendingDurationResp{Pending: pending}
	if pending {
		resp.TaskID = prompt.TaskID
		resp.Quadrant = string(prompt.Quadrant)
	}
	response.OK(c, resp)
}

// SubmitDuration godoc
// @Summary     Submit a captured duration
// @Description Finalizes the pending completion with the given minutes.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body durationReq true "Minutes spent (0-480)"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Out of range"
// @Failure     409 {object} response.Resp "No capture pending"
// @Router      /api/v1/tasks/duration [POST]
func (h *handler) SubmitDuration(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDurationReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.SubmitDuration(ctx, middleware.ScopeFromContext(c), req.Minutes)
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitDuration: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// CancelDuration godoc
// @Summary     Cancel the duration capture
// @Description Abandons the pending capture; the task stays incomplete.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/duration [DELETE]
func (h *handler) CancelDuration(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CancelDuration(ctx, middleware.ScopeFromContext(c)); err != nil {
		h.l.Errorf(ctx, "uc.CancelDuration: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// DeleteTask godoc
// @Summary     Delete a task
// @Description Soft-deletes to trash; deleting from trash removes permanently.
// @Tags        Tasks
// @Produce     json
// @Param       id       path  string true "Task ID"
// @Param       quadrant query string true "Quadrant the task is in"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	quadrant := c.Query("quadrant")
	if quadrant == "" {
		response.Error(c, errQuadrantRequired)
		return
	}

	if err := h.uc.DeleteTask(ctx, middleware.ScopeFromContext(c), c.Param("id"), model.Quadrant(quadrant)); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// MoveTask godoc
// @Summary     Move a task between quadrants
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body moveTaskReq true "Source and target quadrants"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/move [POST]
func (h *handler) MoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.MoveTask(ctx, middleware.ScopeFromContext(c), c.Param("id"),
		model.Quadrant(req.From), model.Quadrant(req.To))
	if err != nil {
		h.l.Errorf(ctx, "uc.MoveTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// EditTask godoc
// @Summary     Edit a task
// @Description Edits by forking: a freshly classified task replaces the
// @Description original, which moves to trash unless keep_original is set.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body editTaskReq true "New attributes"
// @Success     200 {object} editResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/edit [POST]
func (h *handler) EditTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.EditTask(ctx, middleware.ScopeFromContext(c), matrix.EditTaskInput{
		OriginalID:   c.Param("id"),
		Title:        req.Title,
		Description:  req.Description,
		Project:      req.Project,
		KeepOriginal: req.KeepOriginal,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.EditTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEditResp(out))
}

// AssignProject godoc
// @Summary     Assign a project to a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Task ID"
// @Param       body body assignProjectReq true "Project assignment"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/project [POST]
func (h *handler) AssignProject(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssignProjectReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.uc.AssignProject(ctx, middleware.ScopeFromContext(c), c.Param("id"),
		model.Quadrant(req.Quadrant), req.ProjectID)
	if err != nil {
		h.l.Errorf(ctx, "uc.AssignProject: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}

// MarkDelegated godoc
// @Summary     Mark a delegate-quadrant task as handed off
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     409 {object} response.Resp "Not in delegate quadrant"
// @Router      /api/v1/tasks/{id}/delegated [POST]
func (h *handler) MarkDelegated(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.uc.MarkDelegated(ctx, middleware.ScopeFromContext(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.MarkDelegated: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(task))
}
