package http

import (
	"github.com/gin-gonic/gin"

	"eisenhower-matrix/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	day := rg.Group("/day", mw.Auth())
	{
		day.GET("", h.Day)
		day.POST("/load", h.LoadDay)
		day.POST("/switch", h.SwitchDate)
		day.GET("/status", h.Status)
	}

	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("/duration", h.PendingDuration)
		tasks.POST("/duration", h.SubmitDuration)
		tasks.DELETE("/duration", h.CancelDuration)
		tasks.POST("/:id/complete", h.CompleteTask)
		tasks.POST("/:id/move", h.MoveTask)
		tasks.POST("/:id/edit", h.EditTask)
		tasks.POST("/:id/project", h.AssignProject)
		tasks.POST("/:id/delegated", h.MarkDelegated)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	links := rg.Group("/links", mw.Auth())
	{
		links.POST("", h.AddLink)
		links.DELETE("/:id", h.DeleteLink)
	}

	rg.GET("/projects", mw.Auth(), h.Projects)
	rg.GET("/stats", mw.Auth(), h.Stats)
}
