package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/eshoplabs/eshop-api/controllers/order"
	"github.com/eshoplabs/eshop-api/middleware"
)

// SetupOrderRoutes registers the /api/orders endpoints plus the websocket
// feed of newly placed orders.
func SetupOrderRoutes(api *gin.RouterGroup, d Deps) {
	feed := orderControllers.NewOrderFeed()

	orders := api.Group("/orders")
	orders.GET("/feed", feed.Handler)

	authed := orders.Group("")
	authed.Use(middleware.ValidateToken)
	{
		authed.POST("", orderControllers.PlaceOrderHandler(d.Orders, feed))
		authed.GET("/my-orders", orderControllers.MyOrdersHandler(d.Orders))
	}
}
