package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eshoplabs/eshop-api/models"
)

// OrderInput is the raw checkout payload. Product ids arrive as hex
// strings and are only converted after the whole input has validated.
type OrderInput struct {
	Items   []OrderItemInput `json:"items"`
	Total   float64          `json:"total"`
	Address models.Address   `json:"address"`
}

type OrderItemInput struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ProductInput carries the caller-supplied fields of a new product.
// Images and rating default to empty and zero when absent.
type ProductInput struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
}

// ValidateOrder checks every rule before anything is persisted and returns
// the converted order items on success. Rules run in a fixed sequence so a
// failure names the first rule broken: non-empty items, positive total,
// complete address, then per-item id format, quantity, and price.
func ValidateOrder(in OrderInput) ([]models.OrderItem, error) {
	if len(in.Items) == 0 {
		return nil, validationErr("order must contain at least one item")
	}
	if in.Total <= 0 {
		return nil, validationErr("total must be a positive number")
	}
	a := in.Address
	if a.Street == "" || a.City == "" || a.State == "" || a.Zip == "" || a.Country == "" {
		return nil, validationErr("complete address is required")
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		pid, err := parseProductID(it.ProductID)
		if err != nil {
			return nil, validationErr("invalid product id in order items")
		}
		if it.Quantity < 1 {
			return nil, validationErr("quantity must be at least 1")
		}
		if it.Price < 0 {
			return nil, validationErr("price must be a non-negative number")
		}
		items = append(items, models.OrderItem{
			ProductID: pid,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return items, nil
}

// ValidateProduct enforces the catalog invariants: non-empty name and
// description, non-negative price, rating within 0..5.
func ValidateProduct(in ProductInput) error {
	if in.Name == "" {
		return validationErr("product name is required")
	}
	if in.Price < 0 {
		return validationErr("price must be a non-negative number")
	}
	if in.Description == "" {
		return validationErr("product description is required")
	}
	if in.Rating < 0 || in.Rating > 5 {
		return validationErr("rating must be between 0 and 5")
	}
	return nil
}

// parseProductID gates an externally supplied product id: format check
// first, so malformed input never reaches the store.
func parseProductID(s string) (primitive.ObjectID, error) {
	if !models.IsValidID(s) {
		return primitive.NilObjectID, validationErr("invalid product id")
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, validationErr("invalid product id")
	}
	return id, nil
}

// validateCartItem is the shared gate for cart mutations taking a product
// reference and a quantity.
func validateCartItem(productID string, quantity int) (primitive.ObjectID, error) {
	pid, err := parseProductID(productID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if quantity < 1 {
		return primitive.NilObjectID, validationErr("quantity must be at least 1")
	}
	return pid, nil
}
