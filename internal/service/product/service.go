package product

import (
	"context"
	"errors"
	"strings"

	"storefront-api/internal/domain"
	productrepo "storefront-api/internal/repository/product"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Category, error)
}

// Service validates catalog input and delegates persistence.
type Service struct {
	repo       productrepo.Repository
	categories categoryRepo
}

func New(repo productrepo.Repository, categories categoryRepo) *Service {
	return &Service{repo: repo, categories: categories}
}

type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"imageUrl"`
	CategoryID  string `json:"categoryId"`
}

func (s *Service) List(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.repo.List(ctx, categoryID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) validate(ctx context.Context, in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Validationf("product name is required")
	}
	if in.PriceCents < 0 {
		return domain.Validationf("price must not be negative")
	}
	if in.Stock < 0 {
		return domain.Validationf("stock must not be negative")
	}
	if in.CategoryID == "" {
		return domain.Validationf("categoryId is required")
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
