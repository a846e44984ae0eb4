package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/contacts"
	"eisenhower-matrix/internal/middleware"
	"eisenhower-matrix/pkg/response"
)

// Search godoc
// @Summary     Search contacts
// @Description Case-insensitive search over name, phone and category, with
// @Description pagination.
// @Tags        Contacts
// @Produce     json
// @Param       q        query string false "Search text"
// @Param       category query string false "Exact category filter"
// @Param       page     query int    false "Page (1-based)"
// @Param       limit    query int    false "Page size (default 20)"
// @Success     200 {object} searchResp
// @Router      /api/v1/contacts [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Search(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSearchResp(out))
}

// Detail godoc
// @Summary     Get a contact
// @Tags        Contacts
// @Produce     json
// @Param       id path string true "Contact ID"
// @Success     200 {object} contactResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/contacts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	contact, err := h.uc.GetByID(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newContactResp(contact))
}

// Add godoc
// @Summary     Add a contact
// @Tags        Contacts
// @Accept      json
// @Produce     json
// @Param       body body addContactReq true "Contact data"
// @Success     200 {object} contactResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/contacts [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req addContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	contact, err := h.uc.Add(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newContactResp(contact))
}

// Import godoc
// @Summary     Import contacts
// @Description Imports a contact batch, either as structured entries or as a
// @Description raw vCard payload. Invalid entries are skipped.
// @Tags        Contacts
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Entries or vCard text"
// @Success     200 {object} importResp
// @Router      /api/v1/contacts/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	inputs := make([]contacts.ContactInput, 0, len(req.Contacts))
	for _, entry := range req.Contacts {
		inputs = append(inputs, entry.toInput())
	}
	if req.VCard != "" {
		inputs = append(inputs, h.uc.ParseVCard(req.VCard)...)
	}

	inserted, err := h.uc.Import(ctx, middleware.ScopeFromContext(c), inputs)
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newImportResp(inserted))
}

// Stats godoc
// @Summary     Contact book statistics
// @Tags        Contacts
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/contacts/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Stats(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, statsResp{Total: out.Total, ByCategory: out.ByCategory})
}
