package product

import (
	"context"

	"storefront-be/internal/collection"
	"storefront-be/internal/logger"
	"storefront-be/internal/validate"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderItemCounter reports how many order lines reference a product.
// Implemented by the order repository; injected to keep the deletion
// guard out of the order package.
type OrderItemCounter interface {
	CountByProduct(ctx context.Context, productID uint) (int64, error)
}

// Service defines the business logic for products.
type Service interface {
	ListProducts(ctx context.Context, filter *ListFilter) ([]*Product, int64, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	CreateProduct(ctx context.Context, params CreateParams) (*Product, error)
	UpdateProduct(ctx context.Context, id uint, params CreateParams) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type service struct {
	repo        Repository
	collections collection.Repository
	orderItems  OrderItemCounter
}

func NewService(repo Repository, collections collection.Repository, orderItems OrderItemCounter) Service {
	return &service{repo: repo, collections: collections, orderItems: orderItems}
}

func (s *service) ListProducts(ctx context.Context, filter *ListFilter) ([]*Product, int64, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// validateParams runs the field checks shared by create and update.
func (s *service) validateParams(ctx context.Context, params CreateParams) error {
	var errs validate.Errors

	if params.Title == "" {
		errs.Add("title", "is required")
	}
	if params.Slug == "" {
		errs.Add("slug", "is required")
	}
	if params.Inventory < 0 {
		errs.Add("inventory", "must not be negative")
	}
	if !params.UnitPrice.GreaterThan(decimal.Zero) {
		errs.Add("unit_price", "must be greater than zero")
	}

	if params.CollectionID != 0 {
		c, err := s.collections.GetCollection(ctx, params.CollectionID)
		if err != nil {
			return err
		}
		if c == nil {
			errs.Add("collection", "no collection with the given id")
		}
	} else {
		errs.Add("collection", "is required")
	}

	return errs.Err()
}

func (s *service) CreateProduct(ctx context.Context, params CreateParams) (*Product, error) {
	if err := s.validateParams(ctx, params); err != nil {
		return nil, err
	}
	return s.repo.CreateProduct(ctx, params)
}

func (s *service) UpdateProduct(ctx context.Context, id uint, params CreateParams) (*Product, error) {
	if err := s.validateParams(ctx, params); err != nil {
		return nil, err
	}

	p, err := s.repo.UpdateProduct(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// DeleteProduct refuses to delete a product that historical order lines
// still reference.
func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProduct"),
		zap.Uint("product_id", id),
	)

	count, err := s.orderItems.CountByProduct(ctx, id)
	if err != nil {
		log.Error("failed to count order items", zap.Error(err))
		return err
	}
	if count > 0 {
		log.Info("delete rejected, product referenced by order items", zap.Int64("order_items", count))
		return ErrProductReferenced
	}

	affected, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	log.Info("product deleted")
	return nil
}
