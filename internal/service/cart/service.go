package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopcart/internal/domain"
	cartrepo "shopcart/internal/repository/cart"
)

// Service owns the cart ledger rules: one line per item, positive quantities,
// catalog-validated adds. All mutations are keyed by (owner, item) and the
// repository guarantees they apply atomically, so the service itself never
// retries.
type Service struct {
	repo    cartrepo.Repository
	catalog catalogRepo
}

type catalogRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, catalog catalogRepo) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Get returns the owner's cart or domain.ErrCartNotFound.
func (s *Service) Get(ctx context.Context, ownerID string) (*domain.Cart, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

// AddItem merges quantity into the owner's line for the item, creating the
// cart on first use. Repeated adds accumulate; they do not overwrite.
func (s *Service) AddItem(ctx context.Context, ownerID, itemID string, quantity int) (*domain.Cart, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, fmt.Errorf("%w: itemId required", domain.ErrInvalidInput)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	if _, err := s.catalog.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if err := s.repo.AddItem(ctx, ownerID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, ownerID)
}

// SetQuantity overwrites the line's quantity to exactly the given value.
func (s *Service) SetQuantity(ctx context.Context, ownerID, itemID string, quantity int) (*domain.Cart, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, fmt.Errorf("%w: itemId required", domain.ErrInvalidInput)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	if err := s.repo.SetItemQuantity(ctx, ownerID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, ownerID)
}

// RemoveItem deletes the line for the item; remaining lines keep their
// relative order.
func (s *Service) RemoveItem(ctx context.Context, ownerID, itemID string) (*domain.Cart, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, fmt.Errorf("%w: itemId required", domain.ErrInvalidInput)
	}

	if err := s.repo.RemoveItem(ctx, ownerID, itemID); err != nil {
		return nil, err
	}
	return s.repo.GetByOwner(ctx, ownerID)
}
