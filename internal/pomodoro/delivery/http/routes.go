package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/middleware"
)

// RegisterRoutes maps the timer endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	group := rg.Group("/pomodoro", mw.Auth())
	{
		group.POST("/start", h.Start)
		group.POST("/pause", h.Pause)
		group.POST("/resume", h.Resume)
		group.POST("/reset", h.Reset)
		group.GET("/status", h.Status)
	}
}
