package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"` // one cart per user
	Items     []CartItem         `bson:"items" json:"items"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// MergeItem adds quantity onto an existing line item, or appends a new one
// at the end. A cart never holds two line items for the same product.
func (c *Cart) MergeItem(productID primitive.ObjectID, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

// SetItemQuantity overwrites the quantity of an existing line item.
// Returns false when the product is not in the cart.
func (c *Cart) SetItemQuantity(productID primitive.ObjectID, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem filters out the matching line item. Removing a product that is
// not in the cart leaves it unchanged.
func (c *Cart) RemoveItem(productID primitive.ObjectID) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// PopulatedCart is the read shape of a cart: product references resolved to
// full catalog records. Items whose product no longer exists carry a nil
// Product, mirroring what the store actually holds.
type PopulatedCart struct {
	UserID    string              `json:"userId"`
	Items     []PopulatedCartItem `json:"items"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type PopulatedCartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}
