package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-stockflow/internal/apperr"
	"go-stockflow/internal/model"
	"go-stockflow/internal/repository/mocks"
)

func TestCreateProduct(t *testing.T) {
	t.Run("admin creates a product with a fresh SKU", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewProductService(repo)
		product := &model.Product{SKU: "WIDGET-01", Name: "Widget", StockQuantity: 10}

		repo.On("FindBySKU", "WIDGET-01").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", product).Return(nil)

		require.NoError(t, svc.CreateProduct(adminActor(), product))
		repo.AssertExpectations(t)
	})

	t.Run("duplicate SKU is rejected", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewProductService(repo)
		existing := testProduct(5)

		repo.On("FindBySKU", "WIDGET-01").Return(existing, nil)

		err := svc.CreateProduct(adminActor(), &model.Product{SKU: "WIDGET-01", Name: "Widget"})

		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.EqualError(t, err, "SKU already exists")
	})

	t.Run("staff cannot create products", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewProductService(repo)

		err := svc.CreateProduct(staffActor(), &model.Product{SKU: "X", Name: "X"})

		require.Error(t, err)
		assert.True(t, apperr.IsForbidden(err))
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestDeactivateProduct(t *testing.T) {
	t.Run("deactivation keeps the row and clears the active flag", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewProductService(repo)
		product := testProduct(5)

		repo.On("FindByID", product.ID).Return(product, nil)
		repo.On("Update", product).Return(nil)

		deactivated, err := svc.DeactivateProduct(adminActor(), product.ID)

		require.NoError(t, err)
		assert.False(t, deactivated.IsActive)
	})

	t.Run("unknown product maps to not found", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewProductService(repo)
		id := uuid.New()

		repo.On("FindByID", id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.DeactivateProduct(adminActor(), id)

		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestGetProducts(t *testing.T) {
	t.Run("staff see only active products", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewProductService(repo)

		repo.On("FindActive").Return([]model.Product{*testProduct(5)}, nil)

		products, err := svc.GetProducts(staffActor())

		require.NoError(t, err)
		assert.Len(t, products, 1)
		repo.AssertNotCalled(t, "FindAll")
	})

	t.Run("admins see everything", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		svc := NewProductService(repo)

		repo.On("FindAll").Return([]model.Product{*testProduct(5), *testProduct(0)}, nil)

		products, err := svc.GetProducts(adminActor())

		require.NoError(t, err)
		assert.Len(t, products, 2)
	})
}
