package cart

import (
	"context"

	"shopcart/internal/domain"
)

// Repository persists the per-owner cart ledger. Mutations are keyed by
// (owner, item), never by a line's position, and each one must be atomic with
// respect to concurrent mutations on the same owner.
type Repository interface {
	// GetByOwner returns the owner's cart with lines in first-insertion
	// order, or domain.ErrCartNotFound when none exists.
	GetByOwner(ctx context.Context, ownerID string) (*domain.Cart, error)
	// AddItem merges quantity into the owner's line for the item, creating
	// the cart and/or the line as needed.
	AddItem(ctx context.Context, ownerID, itemID string, quantity int) error
	// SetItemQuantity overwrites the line's quantity. Returns
	// domain.ErrCartNotFound or domain.ErrLineNotFound when nothing matches.
	SetItemQuantity(ctx context.Context, ownerID, itemID string, quantity int) error
	// RemoveItem deletes the line. Returns domain.ErrCartNotFound or
	// domain.ErrLineNotFound when nothing matches.
	RemoveItem(ctx context.Context, ownerID, itemID string) error
}
