package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eshoplabs/eshop-api/auth"
)

// SetupAuthRoutes registers the public /api/auth endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, d Deps) {
	group := api.Group("/auth")
	{
		group.POST("/register", auth.Register(d.Users))
		group.POST("/login", auth.Login(d.Users))
	}
}
