package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"go-stockflow/internal/model"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *model.Product) error {
	args := m.Called(product)
	if product != nil && args.Error(0) == nil {
		product.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockProductRepository) FindAll() ([]model.Product, error) {
	args := m.Called()
	if p := args.Get(0); p != nil {
		return p.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) FindActive() ([]model.Product, error) {
	args := m.Called()
	if p := args.Get(0); p != nil {
		return p.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) FindByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) FindBySKU(sku string) (*model.Product, error) {
	args := m.Called(sku)
	if p := args.Get(0); p != nil {
		return p.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}
