package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/middleware"
	"eisenhower-matrix/pkg/response"
)

// AddLink godoc
// @Summary     Add a custom link
// @Description Creates a quick-access link. WhatsApp links derive their URL
// @Description from phone and message.
// @Tags        Links
// @Accept      json
// @Produce     json
// @Param       body body addLinkReq true "Link data"
// @Success     200 {object} linkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/links [POST]
func (h *handler) AddLink(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddLinkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	link, err := h.uc.AddCustomLink(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddCustomLink: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLinkResp(link))
}

// DeleteLink godoc
// @Summary     Delete a custom link
// @Tags        Links
// @Produce     json
// @Param       id path string true "Link ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/links/{id} [DELETE]
func (h *handler) DeleteLink(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteCustomLink(ctx, middleware.ScopeFromContext(c), c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteCustomLink: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
