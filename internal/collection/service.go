package collection

import (
	"context"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for collections.
type Service interface {
	GetCollections(ctx context.Context) ([]*Collection, error)
	GetCollection(ctx context.Context, id uint) (*Collection, error)
	CreateCollection(ctx context.Context, title string) (*Collection, error)
	UpdateCollection(ctx context.Context, id uint, title string) (*Collection, error)
	DeleteCollection(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCollections(ctx context.Context) ([]*Collection, error) {
	collections, err := s.repo.GetCollections(ctx)
	if err != nil {
		return nil, err
	}
	if collections == nil {
		collections = []*Collection{}
	}
	return collections, nil
}

func (s *service) GetCollection(ctx context.Context, id uint) (*Collection, error) {
	c, err := s.repo.GetCollection(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

func (s *service) CreateCollection(ctx context.Context, title string) (*Collection, error) {
	return s.repo.CreateCollection(ctx, title)
}

func (s *service) UpdateCollection(ctx context.Context, id uint, title string) (*Collection, error) {
	c, err := s.repo.UpdateCollection(ctx, id, title)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

// DeleteCollection refuses to delete a collection while products are
// still assigned to it.
func (s *service) DeleteCollection(ctx context.Context, id uint) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteCollection"),
		zap.Uint("collection_id", id),
	)

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		log.Error("failed to count products", zap.Error(err))
		return err
	}
	if count > 0 {
		log.Info("delete rejected, collection still has products", zap.Int64("products", count))
		return ErrCollectionHasProducts
	}

	affected, err := s.repo.DeleteCollection(ctx, id)
	if err != nil {
		log.Error("failed to delete collection", zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrCollectionNotFound
	}

	log.Info("collection deleted")
	return nil
}
