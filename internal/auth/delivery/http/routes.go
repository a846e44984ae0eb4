package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the auth endpoints. Sign-in and sign-up are the only
// unauthenticated routes in the API.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	group := rg.Group("/auth")
	{
		group.POST("/signin", h.SignIn)
		group.POST("/signup", h.SignUp)
		group.POST("/signout", h.SignOut)
		group.GET("/me", h.Me)
	}
}
