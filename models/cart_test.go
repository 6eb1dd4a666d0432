package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("bad hex %q: %v", hex, err)
	}
	return id
}

func TestMergeItemAccumulates(t *testing.T) {
	pid := mustID(t, "507f1f77bcf86cd799439011")
	var cart Cart

	cart.MergeItem(pid, 2)
	cart.MergeItem(pid, 3)

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}
}

func TestMergeItemPreservesInsertionOrder(t *testing.T) {
	first := mustID(t, "507f1f77bcf86cd799439011")
	second := mustID(t, "507f1f77bcf86cd799439012")
	var cart Cart

	cart.MergeItem(first, 1)
	cart.MergeItem(second, 1)
	cart.MergeItem(first, 1)

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(cart.Items))
	}
	if cart.Items[0].ProductID != first || cart.Items[1].ProductID != second {
		t.Fatal("insertion order not preserved")
	}
}

func TestSetItemQuantityReplaces(t *testing.T) {
	pid := mustID(t, "507f1f77bcf86cd799439011")
	var cart Cart
	cart.MergeItem(pid, 3)

	if !cart.SetItemQuantity(pid, 1) {
		t.Fatal("expected item to be found")
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1 after set, got %d", cart.Items[0].Quantity)
	}
}

func TestSetItemQuantityMissingItem(t *testing.T) {
	var cart Cart
	cart.MergeItem(mustID(t, "507f1f77bcf86cd799439011"), 2)

	if cart.SetItemQuantity(mustID(t, "507f1f77bcf86cd799439099"), 1) {
		t.Fatal("expected false for a product not in the cart")
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatal("cart changed by a failed set")
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	pid := mustID(t, "507f1f77bcf86cd799439011")
	other := mustID(t, "507f1f77bcf86cd799439099")
	var cart Cart
	cart.MergeItem(pid, 2)

	cart.RemoveItem(other)
	if len(cart.Items) != 1 {
		t.Fatal("removing an absent product changed the cart")
	}

	cart.RemoveItem(pid)
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}

	cart.RemoveItem(pid)
	if len(cart.Items) != 0 {
		t.Fatal("second remove changed the cart")
	}
}

func TestCartLifecycleScenario(t *testing.T) {
	pid := mustID(t, "507f1f77bcf86cd799439011")
	var cart Cart

	cart.MergeItem(pid, 2)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("after add 2: %+v", cart.Items)
	}

	cart.MergeItem(pid, 3)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("after add 3: %+v", cart.Items)
	}

	if !cart.SetItemQuantity(pid, 1) {
		t.Fatal("set failed")
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("after set 1: %+v", cart.Items)
	}

	cart.RemoveItem(pid)
	if len(cart.Items) != 0 {
		t.Fatalf("after remove: %+v", cart.Items)
	}
}
