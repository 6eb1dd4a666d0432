package cartControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshoplabs/eshop-api/store"
)

type CartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// POST /api/cart
func AddCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.AddItem(c.Request.Context(), userID, input.ProductID, input.Quantity)
		if err != nil {
			writeStoreError(c, err, "Server error while adding to cart")
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// GET /api/cart
func GetCart(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		cart, err := carts.Get(c.Request.Context(), userID)
		if err != nil {
			writeStoreError(c, err, "Server error while fetching cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /api/cart
func UpdateCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.SetItemQuantity(c.Request.Context(), userID, input.ProductID, input.Quantity)
		if err != nil {
			writeStoreError(c, err, "Server error while updating cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart/:productId
func RemoveCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		cart, err := carts.RemoveItem(c.Request.Context(), userID, c.Param("productId"))
		if err != nil {
			writeStoreError(c, err, "Server error while removing from cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart
func ClearCart(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		if err := carts.Clear(c.Request.Context(), userID); err != nil {
			writeStoreError(c, err, "Server error while clearing cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// writeStoreError maps store errors onto the API contract: validation
// failures are 400 with the store's message, missing carts/items are 404,
// anything else is logged and reported as a generic 500.
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
