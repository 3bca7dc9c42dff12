package review

import (
	"context"

	"storefront-be/internal/product"
	"storefront-be/internal/validate"
)

// Service defines the business logic for product reviews.
type Service interface {
	ListByProduct(ctx context.Context, productID uint) ([]*Review, error)
	GetReview(ctx context.Context, productID, id uint) (*Review, error)
	CreateReview(ctx context.Context, params CreateParams) (*Review, error)
	DeleteReview(ctx context.Context, productID, id uint) error
}

type service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

// ensureProduct resolves the parent product or reports it unknown.
func (s *service) ensureProduct(ctx context.Context, productID uint) error {
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return product.ErrProductNotFound
	}
	return nil
}

func (s *service) ListByProduct(ctx context.Context, productID uint) ([]*Review, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) GetReview(ctx context.Context, productID, id uint) (*Review, error) {
	rev, err := s.repo.GetReview(ctx, productID, id)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, ErrReviewNotFound
	}
	return rev, nil
}

func (s *service) CreateReview(ctx context.Context, params CreateParams) (*Review, error) {
	var errs validate.Errors
	if params.Name == "" {
		errs.Add("name", "is required")
	}
	if params.Description == "" {
		errs.Add("description", "is required")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := s.ensureProduct(ctx, params.ProductID); err != nil {
		return nil, err
	}

	return s.repo.CreateReview(ctx, params)
}

func (s *service) DeleteReview(ctx context.Context, productID, id uint) error {
	affected, err := s.repo.DeleteReview(ctx, productID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
