package product

import (
	"context"

	"shopcart/internal/domain"
)

type CreateProductInput struct {
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
}

type Repository interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
