package cart

import (
	"context"

	"storefront-api/internal/domain"
)

type InsertInput struct {
	UserID          string
	ProductID       string
	Quantity        int
	PriceCentsAtAdd int64
}

type Repository interface {
	// Insert always creates a new line; lines for the same product are
	// not merged.
	Insert(ctx context.Context, in InsertInput) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// UpdateQuantity is scoped to the owner; a line belonging to
	// another user is domain.ErrNotFound.
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error)
	// Delete and Clear are idempotent; deleting nothing is not an error.
	Delete(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}
