package cart

import (
	"context"
	"sync"
	"time"

	"shopcart/internal/domain"
	"github.com/google/uuid"
)

// memoryRepo keeps each cart as an insertion-ordered line slice plus an
// item-id index, so lookups are O(1) while serialization order stays stable.
// A single mutex serializes every read-modify-write, which makes same-owner
// operations linearizable.
type memoryRepo struct {
	mu    sync.Mutex
	carts map[string]*memCart
}

type memCart struct {
	id        string
	createdAt time.Time
	lines     []domain.CartLine
	index     map[string]int
}

// NewMemory returns an in-memory Repository used by tests and local runs
// without a database.
func NewMemory() Repository {
	return &memoryRepo{carts: map[string]*memCart{}}
}

func (r *memoryRepo) GetByOwner(_ context.Context, ownerID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[ownerID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return c.snapshot(ownerID), nil
}

func (r *memoryRepo) AddItem(_ context.Context, ownerID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[ownerID]
	if !ok {
		c = &memCart{
			id:        uuid.NewString(),
			createdAt: time.Now().UTC(),
			index:     map[string]int{},
		}
		r.carts[ownerID] = c
	}

	if i, ok := c.index[itemID]; ok {
		c.lines[i].Quantity += quantity
		return nil
	}
	c.index[itemID] = len(c.lines)
	c.lines = append(c.lines, domain.CartLine{
		ItemID:   itemID,
		Quantity: quantity,
		AddedAt:  time.Now().UTC(),
	})
	return nil
}

func (r *memoryRepo) SetItemQuantity(_ context.Context, ownerID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[ownerID]
	if !ok {
		return domain.ErrCartNotFound
	}
	i, ok := c.index[itemID]
	if !ok {
		return domain.ErrLineNotFound
	}
	c.lines[i].Quantity = quantity
	return nil
}

func (r *memoryRepo) RemoveItem(_ context.Context, ownerID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[ownerID]
	if !ok {
		return domain.ErrCartNotFound
	}
	i, ok := c.index[itemID]
	if !ok {
		return domain.ErrLineNotFound
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, itemID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ItemID] = j
	}
	return nil
}

func (c *memCart) snapshot(ownerID string) *domain.Cart {
	out := &domain.Cart{
		ID:        c.id,
		OwnerID:   ownerID,
		Items:     make([]domain.CartLine, len(c.lines)),
		CreatedAt: c.createdAt,
	}
	copy(out.Items, c.lines)
	return out
}
