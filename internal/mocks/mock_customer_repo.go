package mocks

import (
	"context"

	"github.com/movierental/movie-rental-service/internal/domain"
)

type MockCustomerRepo struct {
	domain.CustomerRepository
	CreateFunc     func(ctx context.Context, customer *domain.Customer) error
	UpdateFunc     func(ctx context.Context, customer *domain.Customer) error
	GetAllFunc     func(ctx context.Context, pagination domain.Pagination) ([]*domain.Customer, *domain.Metadata, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Customer, error)
	GetByIdFunc    func(ctx context.Context, id int) (*domain.Customer, error)
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	return m.CreateFunc(ctx, customer)
}

func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	return m.UpdateFunc(ctx, customer)
}

func (m *MockCustomerRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Customer, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, pagination)
}

func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockCustomerRepo) GetById(ctx context.Context, id int) (*domain.Customer, error) {
	return m.GetByIdFunc(ctx, id)
}
