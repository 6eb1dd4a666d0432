package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/eshoplabs/eshop-api/controllers/cart"
	"github.com/eshoplabs/eshop-api/middleware"
)

// SetupCartRoutes registers the /api/cart endpoints. Everything cart is
// scoped to the authenticated user.
func SetupCartRoutes(api *gin.RouterGroup, d Deps) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.POST("", cartControllers.AddCartItem(d.Carts))
		cart.GET("", cartControllers.GetCart(d.Carts))
		cart.PUT("", cartControllers.UpdateCartItem(d.Carts))
		cart.DELETE("/:productId", cartControllers.RemoveCartItem(d.Carts))
		cart.DELETE("", cartControllers.ClearCart(d.Carts))
	}
}
