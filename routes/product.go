package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/eshoplabs/eshop-api/controllers/product"
	"github.com/eshoplabs/eshop-api/middleware"
)

// SetupProductRoutes registers the /api/products endpoints. Reads are
// public; creating a product requires a token.
func SetupProductRoutes(api *gin.RouterGroup, d Deps) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(d.Products))
		products.GET("/export", productcontroller.ExportProductsToExcel(d.Products))
		products.GET("/:id", productcontroller.GetProductByID(d.Products))
		products.POST("", middleware.ValidateToken, productcontroller.CreateProduct(d.Products))
	}
}
