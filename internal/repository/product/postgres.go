package product

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront-api/internal/domain"
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

const productColumns = `id::text, name, COALESCE(description, ''), price_cents, stock, COALESCE(image_url, ''), category_id::text, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context, categoryID string) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	args := []any{}
	if categoryID != "" {
		q = `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY created_at DESC`
		args = append(args, categoryID)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.ImageURL, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price_cents, stock, image_url, category_id)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6)
RETURNING ` + productColumns + `
`
	var out domain.Product
	err := r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.Stock, p.ImageURL, p.CategoryID).
		Scan(&out.ID, &out.Name, &out.Description, &out.PriceCents, &out.Stock, &out.ImageURL, &out.CategoryID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: create name=%s error=%v", p.Name, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $1,
    description = NULLIF($2, ''),
    price_cents = $3,
    stock = $4,
    image_url = NULLIF($5, ''),
    category_id = $6,
    updated_at = now()
WHERE id = $7
RETURNING ` + productColumns + `
`
	var out domain.Product
	err := r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.Stock, p.ImageURL, p.CategoryID, p.ID).
		Scan(&out.ID, &out.Name, &out.Description, &out.PriceCents, &out.Stock, &out.ImageURL, &out.CategoryID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductInUse
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
