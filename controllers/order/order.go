package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshoplabs/eshop-api/store"
)

// POST /api/orders
func PlaceOrderHandler(orders store.OrderStore, feed *OrderFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input store.OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := orders.Place(c.Request.Context(), userID, input)
		if err != nil {
			writeStoreError(c, err, "Server error while placing order")
			return
		}

		if feed != nil {
			feed.Broadcast(order)
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/my-orders
func MyOrdersHandler(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		list, err := orders.ListByUser(c.Request.Context(), userID)
		if err != nil {
			writeStoreError(c, err, "Server error while fetching orders")
			return
		}
		c.JSON(http.StatusOK, list)
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
