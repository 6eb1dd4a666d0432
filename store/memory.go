package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eshoplabs/eshop-api/models"
)

// Memory holds every collection in process. It backs the test suite and
// local runs without a Mongo deployment; the Carts/Orders/Products/Users
// accessors expose it through the store interfaces. The mutex guards map
// access only; like the Mongo stores, a user's concurrent cart mutations
// resolve last-write-wins.
type Memory struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
	carts    map[string]models.Cart // keyed by userId
	orders   map[string][]models.Order
	users    map[string]models.User // keyed by email
}

func NewMemory() *Memory {
	return &Memory{
		products: make(map[primitive.ObjectID]models.Product),
		carts:    make(map[string]models.Cart),
		orders:   make(map[string][]models.Order),
		users:    make(map[string]models.User),
	}
}

func (m *Memory) Carts() CartStore       { return memCarts{m} }
func (m *Memory) Orders() OrderStore     { return memOrders{m} }
func (m *Memory) Products() ProductStore { return memProducts{m} }
func (m *Memory) Users() UserStore       { return memUsers{m} }

// ---- CartStore ----

type memCarts struct{ m *Memory }

var _ CartStore = memCarts{}

func (s memCarts) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.PopulatedCart, error) {
	pid, err := validateCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	cart, ok := s.m.carts[userID]
	if !ok {
		cart = models.Cart{ID: primitive.NewObjectID(), UserID: userID}
	}
	cart.MergeItem(pid, quantity)
	cart.UpdatedAt = time.Now().UTC()
	s.m.carts[userID] = cart
	return s.m.populateLocked(cart), nil
}

func (s memCarts) Get(ctx context.Context, userID string) (*models.PopulatedCart, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	cart, ok := s.m.carts[userID]
	if !ok {
		return &models.PopulatedCart{UserID: userID, Items: []models.PopulatedCartItem{}}, nil
	}
	return s.m.populateLocked(cart), nil
}

func (s memCarts) SetItemQuantity(ctx context.Context, userID, productID string, quantity int) (*models.PopulatedCart, error) {
	pid, err := validateCartItem(productID, quantity)
	if err != nil {
		return nil, err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	cart, ok := s.m.carts[userID]
	if !ok {
		return nil, notFoundErr("cart not found")
	}
	if !cart.SetItemQuantity(pid, quantity) {
		return nil, notFoundErr("item not found in cart")
	}
	cart.UpdatedAt = time.Now().UTC()
	s.m.carts[userID] = cart
	return s.m.populateLocked(cart), nil
}

func (s memCarts) RemoveItem(ctx context.Context, userID, productID string) (*models.PopulatedCart, error) {
	pid, err := parseProductID(productID)
	if err != nil {
		return nil, err
	}

	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	cart, ok := s.m.carts[userID]
	if !ok {
		return nil, notFoundErr("cart not found")
	}
	cart.RemoveItem(pid)
	cart.UpdatedAt = time.Now().UTC()
	s.m.carts[userID] = cart
	return s.m.populateLocked(cart), nil
}

func (s memCarts) Clear(ctx context.Context, userID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.carts, userID)
	return nil
}

// populateLocked resolves product references; callers hold the mutex.
func (m *Memory) populateLocked(cart models.Cart) *models.PopulatedCart {
	out := &models.PopulatedCart{
		UserID:    cart.UserID,
		Items:     make([]models.PopulatedCartItem, 0, len(cart.Items)),
		UpdatedAt: cart.UpdatedAt,
	}
	for _, it := range cart.Items {
		var product *models.Product
		if p, ok := m.products[it.ProductID]; ok {
			cp := p
			product = &cp
		}
		out.Items = append(out.Items, models.PopulatedCartItem{
			Product:  product,
			Quantity: it.Quantity,
		})
	}
	return out
}

// ---- OrderStore ----

type memOrders struct{ m *Memory }

var _ OrderStore = memOrders{}

func (s memOrders) Place(ctx context.Context, userID string, in OrderInput) (*models.Order, error) {
	items, err := ValidateOrder(in)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Items:     items,
		Total:     in.Total,
		Address:   in.Address,
		CreatedAt: time.Now().UTC(),
	}
	s.m.mu.Lock()
	s.m.orders[userID] = append(s.m.orders[userID], order)
	s.m.mu.Unlock()
	return &order, nil
}

func (s memOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	orders := make([]models.Order, len(s.m.orders[userID]))
	copy(orders, s.m.orders[userID])
	// Most recent first; ties keep insertion order among themselves.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// ---- ProductStore ----

type memProducts struct{ m *Memory }

var _ ProductStore = memProducts{}

func (s memProducts) List(ctx context.Context) ([]models.Product, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	products := make([]models.Product, 0, len(s.m.products))
	for _, p := range s.m.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})
	return products, nil
}

func (s memProducts) Get(ctx context.Context, id string) (*models.Product, error) {
	pid, err := parseProductID(id)
	if err != nil {
		return nil, err
	}

	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	p, ok := s.m.products[pid]
	if !ok {
		return nil, notFoundErr("product not found")
	}
	cp := p
	return &cp, nil
}

func (s memProducts) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := ValidateProduct(in); err != nil {
		return nil, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	product := models.Product{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Price:       in.Price,
		Images:      images,
		Rating:      in.Rating,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.m.mu.Lock()
	s.m.products[product.ID] = product
	s.m.mu.Unlock()
	cp := product
	return &cp, nil
}

// ---- UserStore ----

type memUsers struct{ m *Memory }

var _ UserStore = memUsers{}

func (s memUsers) Create(ctx context.Context, user *models.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, exists := s.m.users[user.Email]; exists {
		return ErrDuplicateEmail
	}
	s.m.users[user.Email] = *user
	return nil
}

func (s memUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	u, ok := s.m.users[email]
	if !ok {
		return nil, notFoundErr("user not found")
	}
	cp := u
	return &cp, nil
}
