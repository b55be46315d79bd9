package product

import (
	"context"
	"errors"
	"io"
	"log"

	"shopcart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	const q = `
INSERT INTO products (sku, name, description, price_cents, currency)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
RETURNING id::text, sku, name, COALESCE(description, ''), price_cents, currency, created_at
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, in.SKU, in.Name, in.Description, in.PriceCents, in.Currency).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("product repo: create sku=%s error=%v", in.SKU, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id::text, sku, name, COALESCE(description, ''), price_cents, currency, created_at
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, sku, name, COALESCE(description, ''), price_cents, currency, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.Currency, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || invalidTextRepr(err) {
			return nil, domain.ErrProductNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

// invalidTextRepr reports Postgres error 22P02, raised when a client-supplied
// id does not parse as uuid. Such an id matches no product, so lookups treat
// it as not found.
func invalidTextRepr(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
