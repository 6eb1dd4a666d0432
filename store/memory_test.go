package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCartAddCreatesLazily(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	cart, err := carts.AddItem(ctx, "user-1", validID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", cart.Items)
	}
	if cart.UpdatedAt.IsZero() {
		t.Fatal("updatedAt not set")
	}
}

func TestCartAddMergesQuantity(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	if _, err := carts.AddItem(ctx, "user-1", validID, 2); err != nil {
		t.Fatal(err)
	}
	cart, err := carts.AddItem(ctx, "user-1", validID, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("merge duplicated the line item: %+v", cart.Items)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAddRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	var ve *ValidationError
	if _, err := carts.AddItem(ctx, "user-1", "abc", 1); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad id, got %v", err)
	}
	if _, err := carts.AddItem(ctx, "user-1", validID, 0); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for zero quantity, got %v", err)
	}

	// Nothing persisted by the rejected calls.
	cart, err := carts.Get(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("rejected add left state behind: %+v", cart.Items)
	}
}

func TestCartGetWithoutCart(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	cart, err := carts.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("absence of a cart must not error: %v", err)
	}
	if cart.Items == nil || len(cart.Items) != 0 {
		t.Fatalf("expected empty items, got %+v", cart.Items)
	}
}

func TestCartSetQuantityReplacesNotMerges(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	if _, err := carts.AddItem(ctx, "user-1", validID, 3); err != nil {
		t.Fatal(err)
	}
	cart, err := carts.SetItemQuantity(ctx, "user-1", validID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("set did not replace: got %d", cart.Items[0].Quantity)
	}
}

func TestCartSetQuantityNotFound(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	var nf *NotFoundError
	if _, err := carts.SetItemQuantity(ctx, "user-1", validID, 1); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing cart, got %v", err)
	}

	if _, err := carts.AddItem(ctx, "user-1", validID, 1); err != nil {
		t.Fatal(err)
	}
	other := "507f1f77bcf86cd799439099"
	if _, err := carts.SetItemQuantity(ctx, "user-1", other, 1); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing item, got %v", err)
	}
}

func TestCartRemoveAbsentItemIsNoop(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	if _, err := carts.AddItem(ctx, "user-1", validID, 2); err != nil {
		t.Fatal(err)
	}
	cart, err := carts.RemoveItem(ctx, "user-1", "507f1f77bcf86cd799439099")
	if err != nil {
		t.Fatalf("removing an absent item must not error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("cart changed: %+v", cart.Items)
	}
}

func TestCartClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	carts := NewMemory().Carts()

	if _, err := carts.AddItem(ctx, "user-1", validID, 2); err != nil {
		t.Fatal(err)
	}
	if err := carts.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := carts.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("second clear: %v", err)
	}

	cart, err := carts.Get(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart survived clear: %+v", cart.Items)
	}
}

func TestCartPopulateResolvesProducts(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	product, err := mem.Products().Create(ctx, ProductInput{
		Name:        "Mug",
		Price:       9.99,
		Description: "A mug",
	})
	if err != nil {
		t.Fatal(err)
	}

	cart, err := mem.Carts().AddItem(ctx, "user-1", product.ID.Hex(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[0].Product == nil {
		t.Fatal("product reference not resolved")
	}
	if cart.Items[0].Product.Name != "Mug" {
		t.Fatalf("wrong product resolved: %+v", cart.Items[0].Product)
	}

	// A reference to a product the catalog does not hold resolves to nil.
	cart, err = mem.Carts().AddItem(ctx, "user-1", "507f1f77bcf86cd799439099", 1)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[1].Product != nil {
		t.Fatal("dangling reference should resolve to nil")
	}
}

func TestPlaceOrderPersistsAndLists(t *testing.T) {
	ctx := context.Background()
	orders := NewMemory().Orders()

	placed, err := orders.Place(ctx, "user-1", goodOrderInput())
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if placed.Total != 10 {
		t.Fatalf("total not carried over: %v", placed.Total)
	}
	if placed.ID.IsZero() {
		t.Fatal("order id not assigned")
	}

	list, err := orders.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != placed.ID {
		t.Fatalf("placed order not listed: %+v", list)
	}
}

func TestPlaceOrderValidationPersistsNothing(t *testing.T) {
	ctx := context.Background()
	orders := NewMemory().Orders()

	in := goodOrderInput()
	in.Items = nil
	if _, err := orders.Place(ctx, "user-1", in); err == nil {
		t.Fatal("expected validation error")
	}

	list, err := orders.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("failed place persisted an order: %+v", list)
	}
}

func TestListOrdersMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	orders := NewMemory().Orders()

	first, err := orders.Place(ctx, "user-1", goodOrderInput())
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := orders.Place(ctx, "user-1", goodOrderInput())
	if err != nil {
		t.Fatal(err)
	}

	list, err := orders.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatal("orders not sorted most recent first")
	}
}

func TestProductGetGatesMalformedID(t *testing.T) {
	ctx := context.Background()
	products := NewMemory().Products()

	var ve *ValidationError
	if _, err := products.Get(ctx, "abc"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	var nf *NotFoundError
	if _, err := products.Get(ctx, validID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestProductCreateDefaults(t *testing.T) {
	ctx := context.Background()
	products := NewMemory().Products()

	p, err := products.Create(ctx, ProductInput{Name: "Mug", Price: 5, Description: "A mug"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Images == nil || len(p.Images) != 0 {
		t.Fatalf("images should default to empty, got %v", p.Images)
	}
	if p.Rating != 0 {
		t.Fatalf("rating should default to 0, got %v", p.Rating)
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("createdAt not set")
	}

	got, err := products.Get(ctx, p.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Mug" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}
