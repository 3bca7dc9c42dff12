package product

import (
	"context"
	"errors"
	"testing"

	"storefront-be/internal/collection"
	"storefront-be/internal/validate"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListProducts(ctx context.Context, filter *ListFilter) ([]*Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) CreateProduct(ctx context.Context, params CreateParams) (*Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) UpdateProduct(ctx context.Context, id uint, params CreateParams) (*Product, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) GetCollections(ctx context.Context) ([]*collection.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*collection.Collection), args.Error(1)
}

func (m *MockCollectionRepository) GetCollection(ctx context.Context, id uint) (*collection.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Collection), args.Error(1)
}

func (m *MockCollectionRepository) CreateCollection(ctx context.Context, title string) (*collection.Collection, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Collection), args.Error(1)
}

func (m *MockCollectionRepository) UpdateCollection(ctx context.Context, id uint, title string) (*collection.Collection, error) {
	args := m.Called(ctx, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.Collection), args.Error(1)
}

func (m *MockCollectionRepository) DeleteCollection(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectionRepository) CountProducts(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderItemCounter struct {
	mock.Mock
}

func (m *MockOrderItemCounter) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo *MockRepository, collections *MockCollectionRepository, counter *MockOrderItemCounter) Service {
	return NewService(repo, collections, counter)
}

// --- Tests ---

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	validParams := CreateParams{
		Title:        "Kettle",
		Slug:         "kettle",
		Inventory:    12,
		UnitPrice:    decimal.RequireFromString("25.50"),
		CollectionID: 2,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockColl := new(MockCollectionRepository)
		svc := newTestService(mockRepo, mockColl, new(MockOrderItemCounter))

		mockColl.On("GetCollection", ctx, uint(2)).Return(&collection.Collection{ID: 2}, nil)
		mockRepo.On("CreateProduct", ctx, validParams).Return(&Product{ID: 1, Title: "Kettle"}, nil)

		p, err := svc.CreateProduct(ctx, validParams)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects non-positive price", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockColl := new(MockCollectionRepository)
		svc := newTestService(mockRepo, mockColl, new(MockOrderItemCounter))

		mockColl.On("GetCollection", ctx, uint(2)).Return(&collection.Collection{ID: 2}, nil)

		params := validParams
		params.UnitPrice = decimal.Zero

		_, err := svc.CreateProduct(ctx, params)
		var errs validate.Errors
		assert.ErrorAs(t, err, &errs)
		mockRepo.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Rejects unknown collection", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockColl := new(MockCollectionRepository)
		svc := newTestService(mockRepo, mockColl, new(MockOrderItemCounter))

		mockColl.On("GetCollection", ctx, uint(2)).Return(nil, nil)

		_, err := svc.CreateProduct(ctx, validParams)
		var errs validate.Errors
		assert.ErrorAs(t, err, &errs)
	})
}

func TestService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejected while order items reference it", func(t *testing.T) {
		mockRepo := new(MockRepository)
		counter := new(MockOrderItemCounter)
		svc := newTestService(mockRepo, new(MockCollectionRepository), counter)

		counter.On("CountByProduct", ctx, uint(1)).Return(int64(3), nil)

		err := svc.DeleteProduct(ctx, 1)
		assert.ErrorIs(t, err, ErrProductReferenced)
		mockRepo.AssertNotCalled(t, "DeleteProduct")
	})

	t.Run("Allowed with zero references", func(t *testing.T) {
		mockRepo := new(MockRepository)
		counter := new(MockOrderItemCounter)
		svc := newTestService(mockRepo, new(MockCollectionRepository), counter)

		counter.On("CountByProduct", ctx, uint(1)).Return(int64(0), nil)
		mockRepo.On("DeleteProduct", ctx, uint(1)).Return(int64(1), nil)

		err := svc.DeleteProduct(ctx, 1)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		counter := new(MockOrderItemCounter)
		svc := newTestService(mockRepo, new(MockCollectionRepository), counter)

		counter.On("CountByProduct", ctx, uint(9)).Return(int64(0), nil)
		mockRepo.On("DeleteProduct", ctx, uint(9)).Return(int64(0), nil)

		err := svc.DeleteProduct(ctx, 9)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Counter error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		counter := new(MockOrderItemCounter)
		svc := newTestService(mockRepo, new(MockCollectionRepository), counter)

		counter.On("CountByProduct", ctx, uint(1)).Return(int64(0), errors.New("db error"))

		err := svc.DeleteProduct(ctx, 1)
		assert.Error(t, err)
	})
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := newTestService(mockRepo, new(MockCollectionRepository), new(MockOrderItemCounter))

		mockRepo.On("GetProduct", ctx, uint(9)).Return(nil, nil)

		_, err := svc.GetProduct(ctx, 9)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
