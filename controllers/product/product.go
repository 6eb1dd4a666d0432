package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshoplabs/eshop-api/store"
)

// GET /api/products
func GetProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			writeStoreError(c, err, "Server error while fetching products")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /api/products/:id
func GetProductByID(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeStoreError(c, err, "Server error while fetching product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /api/products
func CreateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input store.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.Create(c.Request.Context(), input)
		if err != nil {
			writeStoreError(c, err, "Server error while adding product")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func writeStoreError(c *gin.Context, err error, fallback string) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}
	log.Printf("%s: %v", fallback, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
