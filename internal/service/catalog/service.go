package catalog

import (
	"context"
	"fmt"
	"strings"

	"shopcart/internal/domain"
	productrepo "shopcart/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		return nil, fmt.Errorf("%w: sku required", domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if in.PriceCents < 0 {
		return nil, fmt.Errorf("%w: priceCents must not be negative", domain.ErrInvalidInput)
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "USD"
	}
	return s.repo.Create(ctx, productrepo.CreateProductInput{
		SKU:         sku,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		Currency:    currency,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
