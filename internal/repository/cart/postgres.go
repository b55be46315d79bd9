package cart

import (
	"context"
	"errors"

	"shopcart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByOwner(ctx context.Context, ownerID string) (*domain.Cart, error) {
	const cartQuery = `
SELECT id::text, owner_id::text, created_at
FROM carts
WHERE owner_id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, cartQuery, ownerID).Scan(&cart.ID, &cart.OwnerID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}
	cart.Items = []domain.CartLine{}

	const linesQuery = `
SELECT item_id::text, quantity, added_at
FROM cart_lines
WHERE cart_id = $1
ORDER BY added_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, linesQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ItemID, &line.Quantity, &line.AddedAt); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

// AddItem upserts the cart row and then merges the quantity into the line in
// a single INSERT ... ON CONFLICT statement. The increment happens inside the
// statement, so two concurrent adds for the same item both land; neither can
// overwrite the other's read.
func (r *postgresRepo) AddItem(ctx context.Context, ownerID, itemID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var cartID string
	if err := tx.QueryRow(ctx, `
INSERT INTO carts (owner_id)
VALUES ($1)
ON CONFLICT (owner_id) DO UPDATE SET owner_id = EXCLUDED.owner_id
RETURNING id::text
`, ownerID).Scan(&cartID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO cart_lines (cart_id, item_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, item_id)
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
`, cartID, itemID, quantity); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) SetItemQuantity(ctx context.Context, ownerID, itemID string, quantity int) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_lines
SET quantity = $3
FROM carts
WHERE cart_lines.cart_id = carts.id AND carts.owner_id = $1 AND cart_lines.item_id = $2
`, ownerID, itemID, quantity)
	if err != nil {
		if invalidTextRepr(err) {
			return r.missReason(ctx, ownerID)
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return r.missReason(ctx, ownerID)
	}
	return nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, ownerID, itemID string) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM cart_lines
USING carts
WHERE cart_lines.cart_id = carts.id AND carts.owner_id = $1 AND cart_lines.item_id = $2
`, ownerID, itemID)
	if err != nil {
		if invalidTextRepr(err) {
			return r.missReason(ctx, ownerID)
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return r.missReason(ctx, ownerID)
	}
	return nil
}

// invalidTextRepr reports Postgres error 22P02 (invalid text representation),
// raised when a client-supplied id does not parse as uuid. Such an id can
// never match a row, so callers treat it as a miss rather than a failure.
func invalidTextRepr(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

// missReason distinguishes a missing cart from a missing line after a guarded
// mutation touched zero rows.
func (r *postgresRepo) missReason(ctx context.Context, ownerID string) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM carts WHERE owner_id = $1)`, ownerID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCartNotFound
	}
	return domain.ErrLineNotFound
}
