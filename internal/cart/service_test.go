package cart

import (
	"context"
	"testing"

	"storefront-be/internal/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCart(ctx context.Context) (*Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) GetCart(ctx context.Context, id uuid.UUID) (*Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Cart), args.Error(1)
}

func (m *MockRepository) CartExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteCart(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetItemByProduct(ctx context.Context, cartID uuid.UUID, productID uint) (*CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID uint, quantity int) (*CartItem, error) {
	args := m.Called(ctx, cartID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID uint) (int64, error) {
	args := m.Called(ctx, cartID, itemID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter *product.ListFilter) ([]*product.Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*product.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetProduct(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, params product.CreateParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, id uint, params product.CreateParams) (*product.Product, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// --- Tests ---

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()
	cartID := uuid.New()

	kettle := &product.Product{
		ID:        1,
		Title:     "Kettle",
		UnitPrice: decimal.RequireFromString("25.50"),
	}

	t.Run("Creates a new line for a fresh product", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("GetProduct", ctx, uint(1)).Return(kettle, nil)
		mockRepo.On("CartExists", ctx, cartID).Return(true, nil)
		mockRepo.On("GetItemByProduct", ctx, cartID, uint(1)).Return(nil, nil)
		mockRepo.On("CreateItem", ctx, CreateItemParams{CartID: cartID, ProductID: 1, Quantity: 2}).
			Return(&CartItem{ID: 5, CartID: cartID, Quantity: 2}, nil)

		item, err := svc.AddItem(ctx, AddItemParams{CartID: cartID, ProductID: 1, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, "Kettle", item.Product.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Merges into an existing line", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("GetProduct", ctx, uint(1)).Return(kettle, nil)
		mockRepo.On("CartExists", ctx, cartID).Return(true, nil)
		mockRepo.On("GetItemByProduct", ctx, cartID, uint(1)).
			Return(&CartItem{ID: 5, CartID: cartID, Quantity: 2}, nil)
		mockRepo.On("UpdateItemQuantity", ctx, cartID, uint(5), 5).
			Return(&CartItem{ID: 5, CartID: cartID, Quantity: 5}, nil)

		item, err := svc.AddItem(ctx, AddItemParams{CartID: cartID, ProductID: 1, Quantity: 3})
		require.NoError(t, err)
		assert.Equal(t, uint(5), item.ID, "must update the existing row, never create a second one")
		assert.Equal(t, 5, item.Quantity)
		mockRepo.AssertNotCalled(t, "CreateItem")
	})

	t.Run("Unknown product rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("GetProduct", ctx, uint(99)).Return(nil, nil)

		_, err := svc.AddItem(ctx, AddItemParams{CartID: cartID, ProductID: 99, Quantity: 1})
		assert.ErrorIs(t, err, ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "CreateItem")
	})

	t.Run("Unknown cart rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockProducts.On("GetProduct", ctx, uint(1)).Return(kettle, nil)
		mockRepo.On("CartExists", ctx, cartID).Return(false, nil)

		_, err := svc.AddItem(ctx, AddItemParams{CartID: cartID, ProductID: 1, Quantity: 1})
		assert.ErrorIs(t, err, ErrCartNotFound)
	})

	t.Run("Quantity out of range rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository))

		_, err := svc.AddItem(ctx, AddItemParams{CartID: cartID, ProductID: 1, Quantity: 0})
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = svc.AddItem(ctx, AddItemParams{CartID: cartID, ProductID: 1, Quantity: 11})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()
	cartID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockProducts := new(MockProductRepository)
		svc := NewService(mockRepo, mockProducts)

		mockRepo.On("UpdateItemQuantity", ctx, cartID, uint(5), 4).
			Return(&CartItem{ID: 5, Quantity: 4, Product: ItemProduct{ID: 1}}, nil)
		mockProducts.On("GetProduct", ctx, uint(1)).
			Return(&product.Product{ID: 1, Title: "Kettle", UnitPrice: decimal.RequireFromString("25.50")}, nil)

		item, err := svc.UpdateItemQuantity(ctx, cartID, 5, 4)
		assert.NoError(t, err)
		assert.Equal(t, 4, item.Quantity)
		assert.Equal(t, "Kettle", item.Product.Title)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockProductRepository))

		mockRepo.On("UpdateItemQuantity", ctx, cartID, uint(9), 4).Return(nil, nil)

		_, err := svc.UpdateItemQuantity(ctx, cartID, 9, 4)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository))

		_, err := svc.UpdateItemQuantity(ctx, cartID, 5, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestCartTotals(t *testing.T) {
	c := Cart{
		Items: []*CartItem{
			{Quantity: 2, Product: ItemProduct{UnitPrice: decimal.RequireFromString("25.50")}},
			{Quantity: 1, Product: ItemProduct{UnitPrice: decimal.RequireFromString("4.00")}},
		},
	}

	assert.True(t, c.TotalPrice().Equal(decimal.RequireFromString("55.00")),
		"expected 55.00, got %s", c.TotalPrice())
}
