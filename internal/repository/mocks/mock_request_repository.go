package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"go-stockflow/internal/model"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(request *model.Request) error {
	args := m.Called(request)
	if request != nil && args.Error(0) == nil {
		request.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRequestRepository) FindAll() ([]model.Request, error) {
	args := m.Called()
	if r := args.Get(0); r != nil {
		return r.([]model.Request), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestRepository) FindByOwner(ownerID uuid.UUID) ([]model.Request, error) {
	args := m.Called(ownerID)
	if r := args.Get(0); r != nil {
		return r.([]model.Request), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestRepository) FindByID(id uuid.UUID) (*model.Request, error) {
	args := m.Called(id)
	if r := args.Get(0); r != nil {
		return r.(*model.Request), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRequestRepository) Save(request *model.Request) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}
