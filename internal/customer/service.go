package customer

import (
	"context"

	"storefront-be/internal/validate"
)

// Service defines the business logic for customer profiles.
type Service interface {
	Create(ctx context.Context, userID uint, params UpdateParams) (*Customer, error)
	GetMe(ctx context.Context, userID uint) (*Customer, error)
	UpdateMe(ctx context.Context, userID uint, params UpdateParams) (*Customer, error)
	GetByID(ctx context.Context, id uint) (*Customer, error)
	UpdateByID(ctx context.Context, id uint, params UpdateParams) (*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateParams(params UpdateParams) error {
	var errs validate.Errors
	if params.Membership != "" && !params.Membership.Valid() {
		errs.Add("membership", "must be one of BRONZE, SILVER, GOLD")
	}
	return errs.Err()
}

func (s *service) Create(ctx context.Context, userID uint, params UpdateParams) (*Customer, error) {
	if params.Membership == "" {
		params.Membership = MembershipBronze
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, params)
}

// GetMe lazily creates the customer on first reference, so every
// authenticated user always has a profile.
func (s *service) GetMe(ctx context.Context, userID uint) (*Customer, error) {
	return s.repo.FindOrCreateByUser(ctx, userID)
}

func (s *service) UpdateMe(ctx context.Context, userID uint, params UpdateParams) (*Customer, error) {
	if params.Membership == "" {
		params.Membership = MembershipBronze
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	c, err := s.repo.UpdateByUserID(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

func (s *service) UpdateByID(ctx context.Context, id uint, params UpdateParams) (*Customer, error) {
	if params.Membership == "" {
		params.Membership = MembershipBronze
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	c, err := s.repo.UpdateByID(ctx, id, params)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}
