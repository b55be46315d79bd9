package cart

import (
	"context"
	"errors"
	"testing"

	"shopcart/internal/domain"
)

func TestMemoryRemoveReindexes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	for _, it := range []string{"a", "b", "c", "d"} {
		if err := repo.AddItem(ctx, "owner", it, 1); err != nil {
			t.Fatalf("add %s: %v", it, err)
		}
	}
	if err := repo.RemoveItem(ctx, "owner", "b"); err != nil {
		t.Fatalf("remove b: %v", err)
	}

	// Lines after the removed one must still be addressable by item id.
	if err := repo.SetItemQuantity(ctx, "owner", "d", 9); err != nil {
		t.Fatalf("set d: %v", err)
	}

	cart, err := repo.GetByOwner(ctx, "owner")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"a", "c", "d"}
	for i, it := range want {
		if cart.Items[i].ItemID != it {
			t.Fatalf("position %d: expected %s, got %s", i, it, cart.Items[i].ItemID)
		}
	}
	if cart.Items[2].Quantity != 9 {
		t.Fatalf("expected d quantity 9, got %d", cart.Items[2].Quantity)
	}
}

func TestMemorySnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if err := repo.AddItem(ctx, "owner", "a", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := repo.GetByOwner(ctx, "owner")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	cart.Items[0].Quantity = 99

	again, err := repo.GetByOwner(ctx, "owner")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.Items[0].Quantity != 1 {
		t.Fatalf("stored cart mutated through snapshot: %+v", again.Items)
	}
}

func TestMemoryMissErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	if err := repo.SetItemQuantity(ctx, "owner", "a", 1); !errors.Is(err, domain.ErrCartNotFound) {
		t.Fatalf("expected cart not found, got %v", err)
	}
	if err := repo.AddItem(ctx, "owner", "a", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.SetItemQuantity(ctx, "owner", "b", 1); !errors.Is(err, domain.ErrLineNotFound) {
		t.Fatalf("expected line not found, got %v", err)
	}
	if err := repo.RemoveItem(ctx, "owner", "b"); !errors.Is(err, domain.ErrLineNotFound) {
		t.Fatalf("expected line not found, got %v", err)
	}
}
