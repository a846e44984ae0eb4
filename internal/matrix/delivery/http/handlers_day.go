package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/middleware"
	"eisenhower-matrix/pkg/response"
)

// Day godoc
// @Summary     Get the active day
// @Description Returns the currently loaded day with tasks in display order.
// @Tags        Day
// @Produce     json
// @Success     200 {object} dayResp
// @Failure     409 {object} response.Resp "No day loaded"
// @Router      /api/v1/day [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.uc.Day(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Day: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(view))
}

// LoadDay godoc
// @Summary     Load a date
// @Description Fetches the given date from persistence, falling back to the
// @Description local snapshot when the backend is unreachable.
// @Tags        Day
// @Accept      json
// @Produce     json
// @Param       body body loadDayReq true "Date to load"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/day/load [POST]
func (h *handler) LoadDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoadDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.uc.LoadDay(ctx, middleware.ScopeFromContext(c), req.Date)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoadDay: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(view))
}

// SwitchDate godoc
// @Summary     Switch to another date
// @Description Abandons the active date entirely and loads the new one.
// @Tags        Day
// @Accept      json
// @Produce     json
// @Param       body body loadDayReq true "Date to switch to"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/day/switch [POST]
func (h *handler) SwitchDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoadDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.uc.SwitchDate(ctx, middleware.ScopeFromContext(c), req.Date)
	if err != nil {
		h.l.Errorf(ctx, "uc.SwitchDate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(view))
}

// Status godoc
// @Summary     Sync status
// @Description Reports whether a persistence call is in flight.
// @Tags        Day
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/day/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Status()))
}

// Projects godoc
// @Summary     List projects
// @Description Returns the immutable project reference data.
// @Tags        Day
// @Produce     json
// @Success     200 {array} projectResp
// @Router      /api/v1/projects [GET]
func (h *handler) Projects(c *gin.Context) {
	projects := h.uc.Projects()
	out := make([]projectResp, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectResp{ID: p.ID, Name: p.Name})
	}
	response.OK(c, out)
}

// Stats godoc
// @Summary     Completion statistics
// @Description Aggregates completion activity over the trailing 30 days.
// @Tags        Day
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Stats(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(out))
}
