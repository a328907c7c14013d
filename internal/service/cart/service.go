package cart

import (
	"context"
	"errors"

	"storefront-api/internal/domain"
	cartrepo "storefront-api/internal/repository/cart"
)

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Service owns all cart-row writes outside of checkout.
type Service struct {
	repo     cartrepo.Repository
	products productRepo
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// AddItem snapshots the product's current price into the new line.
// Adding the same product again creates another line; lines are never
// merged.
func (s *Service) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.Validationf("quantity must be a positive integer")
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	item, err := s.repo.Insert(ctx, cartrepo.InsertInput{
		UserID:          userID,
		ProductID:       product.ID,
		Quantity:        quantity,
		PriceCentsAtAdd: product.PriceCents,
	})
	if err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// Get returns the user's cart lines in insertion order, each resolved
// with its product. Carts are assumed small; no pagination.
func (s *Service) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.Validationf("quantity must be a positive integer")
	}
	return s.repo.UpdateQuantity(ctx, userID, itemID, quantity)
}

// RemoveItem is idempotent; removing an absent line is not an error.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) error {
	return s.repo.Delete(ctx, userID, itemID)
}

// Clear is idempotent.
func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}
