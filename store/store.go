// Package store holds the persistence layer: one interface per document
// collection, a MongoDB implementation, and an in-memory implementation
// used by tests. Handlers depend on the interfaces only.
package store

import (
	"context"
	"errors"

	"github.com/eshoplabs/eshop-api/models"
)

// ErrDuplicateEmail is returned by UserStore.Create when the email is
// already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// ValidationError means the input was malformed or out of bounds. Nothing
// was written; the message is safe to show the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError means a referenced cart, item, or document does not exist.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

func validationErr(reason string) error { return &ValidationError{Reason: reason} }
func notFoundErr(reason string) error   { return &NotFoundError{Reason: reason} }

// CartStore keeps at most one cart per user. Every mutation is a
// read-mutate-write on the user's cart document with no cross-request
// locking: concurrent mutations for the same user resolve last-write-wins,
// matching the single-document model this API was built on.
type CartStore interface {
	// AddItem merges quantity into an existing line item for the product,
	// or appends a new one. The cart is created lazily on first add.
	AddItem(ctx context.Context, userID, productID string, quantity int) (*models.PopulatedCart, error)

	// Get returns the user's cart with products resolved. A user without a
	// cart gets an empty-items cart, never a NotFoundError.
	Get(ctx context.Context, userID string) (*models.PopulatedCart, error)

	// SetItemQuantity replaces (not merges) the quantity of an existing
	// line item. Fails with NotFoundError when the cart or item is absent.
	SetItemQuantity(ctx context.Context, userID, productID string, quantity int) (*models.PopulatedCart, error)

	// RemoveItem filters the product out of the cart. Fails with
	// NotFoundError when the cart is absent; removing a product that was
	// never in the cart is a no-op.
	RemoveItem(ctx context.Context, userID, productID string) (*models.PopulatedCart, error)

	// Clear deletes the cart document. Clearing a user without a cart is
	// not an error.
	Clear(ctx context.Context, userID string) error
}

// OrderStore is append-only: orders are created once and only read back.
type OrderStore interface {
	// Place validates the whole input before any write, then persists one
	// immutable order. Submitted prices and total are trusted as-is; there
	// is no cross-check against the current catalog.
	Place(ctx context.Context, userID string, in OrderInput) (*models.Order, error)

	// ListByUser returns the user's orders, most recent first.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)

	// Get fails with ValidationError on a malformed id before any store
	// query, and NotFoundError when no such product exists.
	Get(ctx context.Context, id string) (*models.Product, error)

	Create(ctx context.Context, in ProductInput) (*models.Product, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
