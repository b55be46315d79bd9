package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			SKU:         "SKU-DEMO-TSHIRT",
			Name:        "Demo T-Shirt",
			Description: "Soft cotton tee for demo purposes",
			PriceCents:  1999,
			Currency:    "USD",
		},
		{
			SKU:         "SKU-DEMO-MUG",
			Name:        "Demo Mug",
			Description: "Ceramic mug with demo logo",
			PriceCents:  1299,
			Currency:    "USD",
		},
		{
			SKU:         "SKU-DEMO-STICKERS",
			Name:        "Demo Sticker Pack",
			Description: "Assorted vinyl stickers",
			PriceCents:  499,
			Currency:    "USD",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (id, sku, name, description, price_cents, currency)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (sku) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency
`
	_, err := pool.Exec(ctx, q, uuid.NewString(), p.SKU, p.Name, p.Description, p.PriceCents, p.Currency)
	return err
}
