package order

import (
	"context"
	"io"
	"log"

	"storefront-api/internal/domain"
	orderrepo "storefront-api/internal/repository/order"
)

// Service drives the cart-to-order transition and order lifecycle.
type Service struct {
	repo   orderrepo.Repository
	logger *log.Logger
}

func New(repo orderrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Create converts the user's cart into a pending order. The repository
// performs the whole transition in one transaction, so a failure at any
// point leaves no partial order and an intact cart.
func (s *Service) Create(ctx context.Context, userID string) (*domain.Order, error) {
	return s.repo.CreateFromCart(ctx, userID)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// GetForUser returns domain.ErrNotFound for an order the user does not
// own, never a permission error.
func (s *Service) GetForUser(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	return s.repo.GetByIDForUser(ctx, orderID, userID)
}

// UpdateStatus is the administrative transition. The status must belong
// to the closed set, and terminal orders stay terminal.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.Validationf("unknown order status %q", string(status))
	}
	current, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() && current.Status != status {
		return nil, domain.Validationf("order is %s and cannot change status", current.Status)
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}

// Cancel is owner-scoped and goes through the same terminal check as
// administrative updates.
func (s *Service) Cancel(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	current, err := s.repo.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		if current.Status == domain.OrderCancelled {
			return current, nil
		}
		return nil, domain.Validationf("order is %s and cannot be cancelled", current.Status)
	}
	ord, err := s.repo.UpdateStatus(ctx, orderID, domain.OrderCancelled)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("order: cancelled id=%s user_id=%s", orderID, userID)
	return ord, nil
}

// ListAll is the unbounded administrative listing.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}
