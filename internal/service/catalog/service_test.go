package catalog

import (
	"context"
	"errors"
	"testing"

	"shopcart/internal/domain"
	productrepo "shopcart/internal/repository/product"
)

type stubRepo struct {
	created *domain.Product
	err     error
	lastIn  productrepo.CreateProductInput
}

func (s *stubRepo) Create(_ context.Context, in productrepo.CreateProductInput) (*domain.Product, error) {
	s.lastIn = in
	return s.created, s.err
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	return nil, s.err
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.created, s.err
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubRepo{})

	cases := []CreateInput{
		{SKU: "  ", Name: "Thing"},
		{SKU: "SKU-1", Name: ""},
		{SKU: "SKU-1", Name: "Thing", PriceCents: -1},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: expected invalid input, got %v", i, err)
		}
	}
}

func TestCreateNormalizes(t *testing.T) {
	repo := &stubRepo{created: &domain.Product{ID: "p1"}}
	svc := New(repo)

	if _, err := svc.Create(context.Background(), CreateInput{
		SKU:      " SKU-1 ",
		Name:     " Thing ",
		Currency: "usd",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.lastIn.SKU != "SKU-1" || repo.lastIn.Name != "Thing" || repo.lastIn.Currency != "USD" {
		t.Fatalf("input not normalized: %+v", repo.lastIn)
	}
}

func TestCreateDefaultsCurrency(t *testing.T) {
	repo := &stubRepo{created: &domain.Product{ID: "p1"}}
	svc := New(repo)

	if _, err := svc.Create(context.Background(), CreateInput{SKU: "SKU-1", Name: "Thing"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.lastIn.Currency != "USD" {
		t.Fatalf("expected USD default, got %q", repo.lastIn.Currency)
	}
}
