package mocks

import (
	"context"

	"github.com/movierental/movie-rental-service/internal/domain"
)

type MockRentalRepo struct {
	domain.RentalRepository
	CreateFunc            func(ctx context.Context, rental *domain.Rental) error
	GetByCustomerNameFunc func(ctx context.Context, customerName string) ([]*domain.Rental, error)
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return m.CreateFunc(ctx, rental)
}

func (m *MockRentalRepo) GetByCustomerName(ctx context.Context, customerName string) ([]*domain.Rental, error) {
	return m.GetByCustomerNameFunc(ctx, customerName)
}
