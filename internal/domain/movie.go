package domain

import "context"

type Movie struct {
	ID    int
	Title string
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}
