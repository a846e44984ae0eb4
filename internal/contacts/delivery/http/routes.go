package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/middleware"
)

// RegisterRoutes maps the contact book endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	group := rg.Group("/contacts", mw.Auth())
	{
		group.GET("", h.Search)
		group.GET("/stats", h.Stats)
		group.GET("/:id", h.Detail)
		group.POST("", h.Add)
		group.POST("/import", h.Import)
	}
}
