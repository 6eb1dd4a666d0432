package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eshoplabs/eshop-api/models"
)

type MongoOrderStore struct {
	orders *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{orders: db.Collection(CollOrders)}
}

var _ OrderStore = (*MongoOrderStore)(nil)

func (s *MongoOrderStore) Place(ctx context.Context, userID string, in OrderInput) (*models.Order, error) {
	items, err := ValidateOrder(in)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Items:     items,
		Total:     in.Total,
		Address:   in.Address,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.orders.InsertOne(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

func (s *MongoOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.orders.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
