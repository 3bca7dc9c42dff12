package order

import (
	"context"

	"storefront-be/internal/customer"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for orders and checkout.
type Service interface {
	Checkout(ctx context.Context, userID uint, cartID string) (*Order, error)
	GetOrders(ctx context.Context, userID uint, isAdmin bool, limit, page *int32) ([]*Order, int64, error)
	GetOrder(ctx context.Context, userID uint, isAdmin bool, orderID uint) (*Order, error)
	GetOrdersByCustomer(ctx context.Context, customerID uint) ([]*Order, int64, error)
	UpdateStatus(ctx context.Context, orderID uint, status PaymentStatus) error
	DeleteOrder(ctx context.Context, orderID uint) error
}

type service struct {
	repo      Repository
	customers customer.Repository
}

func NewService(repo Repository, customers customer.Repository) Service {
	return &service{repo: repo, customers: customers}
}

// Checkout converts a cart into an order for the calling user.
func (s *service) Checkout(ctx context.Context, userID uint, cartID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", userID),
		zap.String("cart_id", cartID),
	)

	id, err := uuid.Parse(cartID)
	if err != nil {
		var errs validate.Errors
		errs.Add("cart_id", "must be a valid cart id")
		return nil, errs
	}

	order, err := s.repo.CreateOrderFromCart(ctx, userID, id)
	if err != nil {
		log.Info("checkout rejected", zap.Error(err))
		return nil, err
	}

	metrics.CheckoutsTotal.Inc()
	log.Info("checkout completed",
		zap.Uint("order_id", order.ID),
		zap.Int("items", len(order.Items)),
	)

	return order, nil
}

// GetOrders scopes the listing: admins see everything, everyone else
// sees only the orders of their own customer record.
func (s *service) GetOrders(ctx context.Context, userID uint, isAdmin bool, limit, page *int32) ([]*Order, int64, error) {
	if isAdmin {
		return s.repo.GetOrders(ctx, nil, limit, page)
	}

	c, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if c == nil {
		return []*Order{}, 0, nil
	}

	return s.repo.GetOrders(ctx, &c.ID, limit, page)
}

func (s *service) GetOrder(ctx context.Context, userID uint, isAdmin bool, orderID uint) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	if !isAdmin {
		c, err := s.customers.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		// Non-owners get the same answer as a missing order.
		if c == nil || c.ID != o.CustomerID {
			return nil, ErrOrderNotFound
		}
	}

	return o, nil
}

func (s *service) GetOrdersByCustomer(ctx context.Context, customerID uint) ([]*Order, int64, error) {
	return s.repo.GetOrders(ctx, &customerID, nil, nil)
}

func (s *service) UpdateStatus(ctx context.Context, orderID uint, status PaymentStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	affected, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *service) DeleteOrder(ctx context.Context, orderID uint) error {
	affected, err := s.repo.DeleteOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
