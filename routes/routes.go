package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eshoplabs/eshop-api/store"
)

// Deps carries the constructed stores the handlers run against. main
// builds them once and passes them down; nothing route-level reaches for
// globals.
type Deps struct {
	Products store.ProductStore
	Carts    store.CartStore
	Orders   store.OrderStore
	Users    store.UserStore
}

// SetupRoutes is the single entry point that wires every route group
// under /api.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	SetupAuthRoutes(api, d)
	SetupProductRoutes(api, d)
	SetupCartRoutes(api, d)
	SetupOrderRoutes(api, d)
}
