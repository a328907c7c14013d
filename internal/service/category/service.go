package category

import (
	"context"
	"strings"

	"storefront-api/internal/domain"
	categoryrepo "storefront-api/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validationf("category name is required")
	}
	return s.repo.Create(ctx, domain.Category{Name: name, Description: in.Description})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validationf("category name is required")
	}
	return s.repo.Update(ctx, domain.Category{ID: id, Name: name, Description: in.Description})
}

// Delete refuses to cascade: a category still referenced by products
// fails with domain.ErrCategoryInUse.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
