package mocks

import (
	"context"

	"github.com/pageza/macro-service/backend/internal/models"
	"github.com/pageza/macro-service/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockMacroService is a mock implementation of the macro calculator
type MockMacroService struct {
	mock.Mock
}

// FoodOptions mocks the FoodOptions method
func (m *MockMacroService) FoodOptions(ctx context.Context, req *types.FoodOptionsRequest) (*models.FoodOptions, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodOptions), args.Error(1)
}
