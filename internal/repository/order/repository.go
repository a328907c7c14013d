package order

import (
	"context"

	"storefront-api/internal/domain"
)

type Repository interface {
	// CreateFromCart converts the user's current cart into an order in a
	// single transaction: read lines, write the order header and items,
	// and clear exactly the lines that were read. An empty cart is
	// domain.ErrEmptyCart; a cart that changed under a concurrent
	// checkout is domain.ErrCheckoutConflict and nothing is written.
	CreateFromCart(ctx context.Context, userID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// GetByIDForUser returns domain.ErrNotFound for another user's
	// order; existence is never confirmed to non-owners.
	GetByIDForUser(ctx context.Context, orderID, userID string) (*domain.Order, error)
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}
