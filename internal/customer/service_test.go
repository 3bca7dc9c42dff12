package customer

import (
	"context"
	"testing"

	"storefront-be/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindOrCreateByUser(ctx context.Context, userID uint) (*Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, userID uint, params UpdateParams) (*Customer, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID uint) (*Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepository) UpdateByID(ctx context.Context, id uint, params UpdateParams) (*Customer, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepository) UpdateByUserID(ctx context.Context, userID uint, params UpdateParams) (*Customer, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults membership to bronze", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := UpdateParams{Phone: "0812", Membership: MembershipBronze}
		mockRepo.On("Create", ctx, uint(7), expected).
			Return(&Customer{ID: 1, UserID: 7, Phone: "0812", Membership: MembershipBronze}, nil)

		c, err := svc.Create(ctx, 7, UpdateParams{Phone: "0812"})
		assert.NoError(t, err)
		assert.Equal(t, MembershipBronze, c.Membership)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects unknown membership", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, 7, UpdateParams{Membership: "PLATINUM"})

		var errs validate.Errors
		assert.ErrorAs(t, err, &errs)
		assert.Equal(t, "membership", errs[0].Field)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("FindOrCreateByUser", ctx, uint(7)).
		Return(&Customer{ID: 3, UserID: 7, Membership: MembershipBronze}, nil)

	c, err := svc.GetMe(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), c.ID)
}

func TestService_UpdateMe(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		params := UpdateParams{Phone: "0813", Membership: MembershipGold}
		mockRepo.On("UpdateByUserID", ctx, uint(7), params).
			Return(&Customer{ID: 3, UserID: 7, Phone: "0813", Membership: MembershipGold}, nil)

		c, err := svc.UpdateMe(ctx, 7, params)
		assert.NoError(t, err)
		assert.Equal(t, MembershipGold, c.Membership)
	})

	t.Run("No profile yet", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("UpdateByUserID", ctx, uint(7), mock.Anything).Return(nil, nil)

		_, err := svc.UpdateMe(ctx, 7, UpdateParams{Phone: "0813"})
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("GetByID", ctx, uint(99)).Return(nil, nil)

	_, err := svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
