package cart

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Insert(ctx context.Context, in InsertInput) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (user_id, product_id, quantity, price_cents_at_add)
VALUES ($1, $2, $3, $4)
RETURNING id::text, user_id::text, product_id::text, quantity, price_cents_at_add, created_at
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, in.UserID, in.ProductID, in.Quantity, in.PriceCentsAtAdd).
		Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.PriceCentsAtAdd, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const q = `
SELECT ci.id::text, ci.user_id::text, ci.product_id::text, ci.quantity, ci.price_cents_at_add, ci.created_at,
       p.id::text, p.name, COALESCE(p.description, ''), p.price_cents, p.stock, COALESCE(p.image_url, ''), p.category_id::text, p.created_at, p.updated_at
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		var p domain.Product
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.PriceCentsAtAdd, &item.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE id = $2 AND user_id = $3
RETURNING id::text, user_id::text, product_id::text, quantity, price_cents_at_add, created_at
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, quantity, itemID, userID).
		Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.PriceCentsAtAdd, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Delete(ctx context.Context, userID, itemID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	return err
}

func (r *postgresRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
