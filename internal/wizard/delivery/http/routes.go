package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/middleware"
)

// RegisterRoutes maps the wizard endpoints. The session is per deployment,
// like the day itself, but still requires an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	wiz := rg.Group("/wizard", mw.Auth())
	{
		wiz.POST("/start", h.Start)
		wiz.GET("", h.State)
		wiz.POST("/answer", h.Answer)
		wiz.POST("/back", h.Back)
		wiz.POST("/create", h.Create)
		wiz.DELETE("", h.Cancel)
	}
}
