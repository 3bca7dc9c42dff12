package cart

import (
	"context"

	"storefront-be/internal/logger"
	"storefront-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	CreateCart(ctx context.Context) (*Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*Cart, error)
	DeleteCart(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, params AddItemParams) (*CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID uint, quantity int) (*CartItem, error)
	RemoveItem(ctx context.Context, cartID uuid.UUID, itemID uint) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) CreateCart(ctx context.Context) (*Cart, error) {
	return s.repo.CreateCart(ctx)
}

func (s *service) GetCart(ctx context.Context, id uuid.UUID) (*Cart, error) {
	c, err := s.repo.GetCart(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

func (s *service) DeleteCart(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.DeleteCart(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartNotFound
	}
	return nil
}

// AddItem adds a product to a cart. Adding a product already present
// increments the existing line instead of creating a second one.
func (s *service) AddItem(ctx context.Context, params AddItemParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("cart_id", params.CartID.String()),
		zap.Uint("product_id", params.ProductID),
	)

	if params.Quantity < 1 || params.Quantity > 10 {
		return nil, ErrInvalidQuantity
	}

	// 1. The product must exist
	prod, err := s.productRepo.GetProduct(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, ErrProductNotFound
	}

	// 2. So must the cart
	exists, err := s.repo.CartExists(ctx, params.CartID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCartNotFound
	}

	// 3. Merge into an existing line, or create one
	existing, err := s.repo.GetItemByProduct(ctx, params.CartID, params.ProductID)
	if err != nil {
		return nil, err
	}

	var item *CartItem
	if existing != nil {
		item, err = s.repo.UpdateItemQuantity(
			ctx,
			params.CartID,
			existing.ID,
			existing.Quantity+params.Quantity,
		)
	} else {
		item, err = s.repo.CreateItem(ctx, CreateItemParams{
			CartID:    params.CartID,
			ProductID: params.ProductID,
			Quantity:  params.Quantity,
		})
	}
	if err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	item.Product = ItemProduct{
		ID:        prod.ID,
		Title:     prod.Title,
		UnitPrice: prod.UnitPrice,
	}

	log.Info("cart item added", zap.Int("quantity", item.Quantity))
	return item, nil
}

func (s *service) UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID uint, quantity int) (*CartItem, error) {
	if quantity < 1 || quantity > 10 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.repo.UpdateItemQuantity(ctx, cartID, itemID, quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	prod, err := s.productRepo.GetProduct(ctx, item.Product.ID)
	if err != nil {
		return nil, err
	}
	if prod != nil {
		item.Product = ItemProduct{
			ID:        prod.ID,
			Title:     prod.Title,
			UnitPrice: prod.UnitPrice,
		}
	}

	return item, nil
}

func (s *service) RemoveItem(ctx context.Context, cartID uuid.UUID, itemID uint) error {
	affected, err := s.repo.DeleteItem(ctx, cartID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
