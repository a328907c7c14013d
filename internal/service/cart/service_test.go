package cart

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/domain"
	cartrepo "storefront-api/internal/repository/cart"
)

type stubRepo struct {
	inserts    []cartrepo.InsertInput
	insertErr  error
	items      []domain.CartItem
	listErr    error
	updated    *domain.CartItem
	updateErr  error
	deletedIDs []string
	clearedFor string
}

func (s *stubRepo) Insert(_ context.Context, in cartrepo.InsertInput) (*domain.CartItem, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.inserts = append(s.inserts, in)
	return &domain.CartItem{
		ID:              "line-1",
		UserID:          in.UserID,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		PriceCentsAtAdd: in.PriceCentsAtAdd,
	}, nil
}

func (s *stubRepo) ListByUser(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.items, s.listErr
}

func (s *stubRepo) UpdateQuantity(_ context.Context, _, _ string, _ int) (*domain.CartItem, error) {
	return s.updated, s.updateErr
}

func (s *stubRepo) Delete(_ context.Context, _, itemID string) error {
	s.deletedIDs = append(s.deletedIDs, itemID)
	return nil
}

func (s *stubRepo) Clear(_ context.Context, userID string) error {
	s.clearedFor = userID
	return nil
}

type stubProductRepo struct {
	product *domain.Product
	err     error
}

func (s *stubProductRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductRepo{})
	for _, qty := range []int{0, -1} {
		_, err := svc.AddItem(context.Background(), "u1", "p1", qty)
		if !domain.IsValidation(err) {
			t.Fatalf("quantity %d: expected ValidationError, got %v", qty, err)
		}
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductRepo{err: domain.ErrNotFound})
	_, err := svc.AddItem(context.Background(), "u1", "missing", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddItemSnapshotsCurrentPrice(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubProductRepo{product: &domain.Product{ID: "p1", PriceCents: 1999}})

	item, err := svc.AddItem(context.Background(), "u1", "p1", 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.PriceCentsAtAdd != 1999 {
		t.Fatalf("expected price snapshot 1999, got %d", item.PriceCentsAtAdd)
	}
	if item.Product == nil || item.Product.ID != "p1" {
		t.Fatalf("expected resolved product on the line, got %+v", item.Product)
	}
	if len(repo.inserts) != 1 || repo.inserts[0].PriceCentsAtAdd != 1999 {
		t.Fatalf("unexpected insert %+v", repo.inserts)
	}
}

func TestAddItemTwiceCreatesTwoLines(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubProductRepo{product: &domain.Product{ID: "p1", PriceCents: 500}})

	if _, err := svc.AddItem(context.Background(), "u1", "p1", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.AddItem(context.Background(), "u1", "p1", 3); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(repo.inserts) != 2 {
		t.Fatalf("expected two inserted lines, got %d", len(repo.inserts))
	}
}

func TestUpdateQuantityValidation(t *testing.T) {
	svc := New(&stubRepo{}, &stubProductRepo{})
	_, err := svc.UpdateQuantity(context.Background(), "u1", "line-1", 0)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateQuantityForeignLineIsNotFound(t *testing.T) {
	svc := New(&stubRepo{updateErr: domain.ErrNotFound}, &stubProductRepo{})
	_, err := svc.UpdateQuantity(context.Background(), "u1", "someone-elses-line", 2)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveAndClearDelegate(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubProductRepo{})

	if err := svc.RemoveItem(context.Background(), "u1", "line-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Clear(context.Background(), "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(repo.deletedIDs) != 1 || repo.deletedIDs[0] != "line-1" {
		t.Fatalf("unexpected deletes %v", repo.deletedIDs)
	}
	if repo.clearedFor != "u1" {
		t.Fatalf("expected clear for u1, got %q", repo.clearedFor)
	}
}
