package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/pomodoro"
	pkgErrors "eisenhower-matrix/pkg/errors"
	"eisenhower-matrix/pkg/response"
)

type statusResp struct {
	State            string `json:"state"`
	Phase            string `json:"phase"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Sessions         int    `json:"sessions"`
}

func newStatusResp(st pomodoro.Status) statusResp {
	return statusResp{
		State:            string(st.State),
		Phase:            string(st.Phase),
		RemainingSeconds: int(st.Remaining / time.Second),
		Sessions:         st.Sessions,
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, pomodoro.ErrNotRunning),
		errors.Is(err, pomodoro.ErrNotPaused):
		return pkgErrors.NewHTTPError(409, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "timer failed")
	}
}

// Start godoc
// @Summary     Start the timer
// @Tags        Pomodoro
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/pomodoro/start [POST]
func (h *handler) Start(c *gin.Context) {
	response.OK(c, newStatusResp(h.timer.Start()))
}

// Pause godoc
// @Summary     Pause the timer
// @Tags        Pomodoro
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     409 {object} response.Resp "Not running"
// @Router      /api/v1/pomodoro/pause [POST]
func (h *handler) Pause(c *gin.Context) {
	st, err := h.timer.Pause()
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, newStatusResp(st))
}

// Resume godoc
// @Summary     Resume the timer
// @Tags        Pomodoro
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     409 {object} response.Resp "Not paused"
// @Router      /api/v1/pomodoro/resume [POST]
func (h *handler) Resume(c *gin.Context) {
	st, err := h.timer.Resume()
	if err != nil {
		response.Error(c, mapError(err))
		return
	}
	response.OK(c, newStatusResp(st))
}

// Reset godoc
// @Summary     Reset the timer
// @Tags        Pomodoro
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/pomodoro/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	response.OK(c, newStatusResp(h.timer.Reset()))
}

// Status godoc
// @Summary     Timer status
// @Tags        Pomodoro
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/pomodoro/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.timer.Status()))
}
