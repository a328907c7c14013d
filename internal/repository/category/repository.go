package category

import (
	"context"

	"storefront-api/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	// Delete fails with domain.ErrCategoryInUse when products still
	// reference the category; it never cascades.
	Delete(ctx context.Context, id string) error
}
