package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/middleware"
	"eisenhower-matrix/internal/wizard"
	"eisenhower-matrix/pkg/response"
)

// Start godoc
// @Summary     Start the wizard
// @Description Opens a fresh questionnaire session at the title step.
// @Tags        Wizard
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/wizard/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.Start(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newStateResp(st))
}

// State godoc
// @Summary     Current wizard state
// @Tags        Wizard
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     409 {object} response.Resp "Not started"
// @Router      /api/v1/wizard [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.State(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newStateResp(st))
}

// Answer godoc
// @Summary     Answer the current step
// @Description Records the answer and advances to the next applicable step.
// @Tags        Wizard
// @Accept      json
// @Produce     json
// @Param       body body answerReq true "Answer for the current step"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/wizard/answer [POST]
func (h *handler) Answer(c *gin.Context) {
	ctx := c.Request.Context()

	var req answerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	st, err := h.uc.Answer(ctx, middleware.ScopeFromContext(c), wizard.AnswerInput{
		Text: req.Text,
		Yes:  req.Yes,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newStateResp(st))
}

// Back godoc
// @Summary     Go back one step
// @Tags        Wizard
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     409 {object} response.Resp "At first step"
// @Router      /api/v1/wizard/back [POST]
func (h *handler) Back(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.Back(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newStateResp(st))
}

// Create godoc
// @Summary     Create the drafted task
// @Description Places the task into the recommended quadrant and ends the
// @Description session.
// @Tags        Wizard
// @Produce     json
// @Success     200 {object} createResp
// @Failure     409 {object} response.Resp "Not at summary"
// @Router      /api/v1/wizard/create [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.uc.Create(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newCreateResp(task))
}

// Cancel godoc
// @Summary     Abandon the wizard session
// @Tags        Wizard
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/wizard [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Cancel(ctx, middleware.ScopeFromContext(c)); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
