package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eshoplabs/eshop-api/models"
)

// MongoCartStore persists one cart document per user in the carts
// collection and resolves product references out of the products
// collection on every read.
type MongoCartStore struct {
	carts    *mongo.Collection
	products *mongo.Collection
}

func NewMongoCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{
		carts:    db.Collection(CollCarts),
		products: db.Collection(CollProducts),
	}
}

var _ CartStore = (*MongoCartStore)(nil)

func (s *MongoCartStore) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.PopulatedCart, error) {
	pid, err := validateCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	err = s.carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	switch {
	case err == nil:
		cart.MergeItem(pid, quantity)
	case errors.Is(err, mongo.ErrNoDocuments):
		cart = models.Cart{
			UserID: userID,
			Items:  []models.CartItem{{ProductID: pid, Quantity: quantity}},
		}
	default:
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, &cart); err != nil {
		return nil, err
	}
	return s.populate(ctx, &cart)
}

func (s *MongoCartStore) Get(ctx context.Context, userID string) (*models.PopulatedCart, error) {
	var cart models.Cart
	err := s.carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Absence of a cart is a valid empty state.
		return &models.PopulatedCart{UserID: userID, Items: []models.PopulatedCartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return s.populate(ctx, &cart)
}

func (s *MongoCartStore) SetItemQuantity(ctx context.Context, userID, productID string, quantity int) (*models.PopulatedCart, error) {
	pid, err := validateCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	err = s.carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFoundErr("cart not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if !cart.SetItemQuantity(pid, quantity) {
		return nil, notFoundErr("item not found in cart")
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, &cart); err != nil {
		return nil, err
	}
	return s.populate(ctx, &cart)
}

func (s *MongoCartStore) RemoveItem(ctx context.Context, userID, productID string) (*models.PopulatedCart, error) {
	pid, err := parseProductID(productID)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	err = s.carts.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFoundErr("cart not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart.RemoveItem(pid)
	cart.UpdatedAt = time.Now().UTC()
	if err := s.save(ctx, &cart); err != nil {
		return nil, err
	}
	return s.populate(ctx, &cart)
}

func (s *MongoCartStore) Clear(ctx context.Context, userID string) error {
	if _, err := s.carts.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *MongoCartStore) save(ctx context.Context, cart *models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.carts.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, cart, opts); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// populate is the explicit join step: load every referenced product in one
// query and attach it to its line item. A dangling reference resolves to a
// nil product rather than an error.
func (s *MongoCartStore) populate(ctx context.Context, cart *models.Cart) (*models.PopulatedCart, error) {
	out := &models.PopulatedCart{
		UserID:    cart.UserID,
		Items:     make([]models.PopulatedCartItem, 0, len(cart.Items)),
		UpdatedAt: cart.UpdatedAt,
	}
	if len(cart.Items) == 0 {
		return out, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}

	cur, err := s.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("resolve cart products: %w", err)
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("resolve cart products: %w", err)
	}

	byID := make(map[primitive.ObjectID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for _, it := range cart.Items {
		out.Items = append(out.Items, models.PopulatedCartItem{
			Product:  byID[it.ProductID],
			Quantity: it.Quantity,
		})
	}
	return out, nil
}
