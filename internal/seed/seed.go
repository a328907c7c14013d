package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	Category    string
}

// Apply inserts basic seed data for manual testing. It is idempotent
// via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureUser(ctx, pool, "admin@example.com", "Adminpass1", "admin"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if err := ensureUser(ctx, pool, "customer@example.com", "Custpass1", "customer"); err != nil {
		return fmt.Errorf("ensure customer: %w", err)
	}

	categories := map[string]string{
		"Apparel": "Clothing and wearables",
		"Kitchen": "Mugs, plates and utensils",
		"Gadgets": "Small electronics",
	}
	categoryIDs := make(map[string]string, len(categories))
	for name, desc := range categories {
		id, err := ensureCategory(ctx, pool, name, desc)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		categoryIDs[name] = id
	}

	products := []productSeed{
		{Name: "Demo T-Shirt", Description: "Soft cotton tee", PriceCents: 1999, Stock: 50, Category: "Apparel"},
		{Name: "Demo Mug", Description: "Ceramic mug with logo", PriceCents: 1299, Stock: 120, Category: "Kitchen"},
		{Name: "Demo Power Bank", Description: "10000 mAh battery pack", PriceCents: 3499, Stock: 30, Category: "Gadgets"},
	}
	for _, p := range products {
		if err := ensureProduct(ctx, pool, p, categoryIDs[p.Category]); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, email, password, role string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, password_hash, role)
VALUES ($1, $2, $3)
ON CONFLICT ((lower(email))) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, string(hashed), role)
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name, description string) (string, error) {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1, $2)
ON CONFLICT ((lower(name))) DO UPDATE SET description = EXCLUDED.description
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name, description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed, categoryID string) error {
	const q = `
INSERT INTO products (name, description, price_cents, stock, category_id)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.PriceCents, p.Stock, categoryID)
	return err
}
