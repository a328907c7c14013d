package order

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront-api/internal/domain"
	"github.com/jackc/pgx/v5"
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

const orderColumns = `id::text, user_id::text, total_cents, status, created_at`

func (r *postgresRepo) CreateFromCart(ctx context.Context, userID string) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	lines, err := readCartLines(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total := domain.TotalCents(lines)

	var ord domain.Order
	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents, status)
VALUES ($1, $2, 'pending')
RETURNING `+orderColumns+`
`, userID, total).Scan(&ord.ID, &ord.UserID, &ord.TotalCents, &ord.Status, &ord.CreatedAt)
	if err != nil {
		return nil, err
	}

	lineIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		var item domain.OrderItem
		err = tx.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, price_cents_at_order)
VALUES ($1, $2, $3, $4)
RETURNING id::text, order_id::text, product_id::text, quantity, price_cents_at_order, created_at
`, ord.ID, line.ProductID, line.Quantity, line.PriceCentsAtAdd).
			Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceCentsAtOrder, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		ord.Items = append(ord.Items, item)
		lineIDs = append(lineIDs, line.ID)
	}

	// Compare-and-clear: delete exactly the lines read above. A racing
	// checkout that committed first leaves fewer rows to delete, so the
	// count mismatch aborts this transaction instead of double-ordering.
	cmd, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1 AND id = ANY($2)`, userID, lineIDs)
	if err != nil {
		return nil, err
	}
	if int(cmd.RowsAffected()) != len(lineIDs) {
		r.logger.Printf("order repo: checkout conflict user_id=%s expected=%d deleted=%d", userID, len(lineIDs), cmd.RowsAffected())
		return nil, domain.ErrCheckoutConflict
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created order id=%s user_id=%s total_cents=%d items=%d", ord.ID, userID, total, len(ord.Items))
	return &ord, nil
}

func readCartLines(ctx context.Context, tx pgx.Tx, userID string) ([]domain.CartItem, error) {
	rows, err := tx.Query(ctx, `
SELECT id::text, product_id::text, quantity, price_cents_at_add
FROM cart_items
WHERE user_id = $1
ORDER BY created_at ASC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartItem
	for rows.Next() {
		var line domain.CartItem
		if err := rows.Scan(&line.ID, &line.ProductID, &line.Quantity, &line.PriceCentsAtAdd); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.listOrders(ctx, q, userID)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return r.listOrders(ctx, q)
}

func (r *postgresRepo) GetByIDForUser(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND user_id = $2`
	return r.fetchOrder(ctx, q, orderID, userID)
}

func (r *postgresRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.fetchOrder(ctx, q, orderID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1
WHERE id = $2
RETURNING ` + orderColumns + `
`
	var ord domain.Order
	err := r.pool.QueryRow(ctx, q, string(status), orderID).
		Scan(&ord.ID, &ord.UserID, &ord.TotalCents, &ord.Status, &ord.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	ord.Items = items
	return &ord, nil
}

func (r *postgresRepo) fetchOrder(ctx context.Context, q string, args ...any) (*domain.Order, error) {
	var ord domain.Order
	err := r.pool.QueryRow(ctx, q, args...).
		Scan(&ord.ID, &ord.UserID, &ord.TotalCents, &ord.Status, &ord.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := r.fetchItems(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	ord.Items = items
	return &ord, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, order_id::text, product_id::text, quantity, price_cents_at_order, created_at
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC
`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceCentsAtOrder, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) listOrders(ctx context.Context, q string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var ord domain.Order
		if err := rows.Scan(&ord.ID, &ord.UserID, &ord.TotalCents, &ord.Status, &ord.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.fetchItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}
