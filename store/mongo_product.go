package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eshoplabs/eshop-api/models"
)

type MongoProductStore struct {
	products *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{products: db.Collection(CollProducts)}
}

var _ ProductStore = (*MongoProductStore)(nil)

func (s *MongoProductStore) List(ctx context.Context) ([]models.Product, error) {
	cur, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *MongoProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	pid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = s.products.FindOne(ctx, bson.M{"_id": pid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFoundErr("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	return &product, nil
}

func (s *MongoProductStore) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := ValidateProduct(in); err != nil {
		return nil, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	product := &models.Product{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Price:       in.Price,
		Images:      images,
		Rating:      in.Rating,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.products.InsertOne(ctx, product); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}
