package mocks

import (
	"context"

	"github.com/movierental/movie-rental-service/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc  func(ctx context.Context, movie *domain.Movie) error
	UpdateFunc  func(ctx context.Context, movie *domain.Movie) error
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, pagination)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}
