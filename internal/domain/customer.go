package domain

import "context"

type Customer struct {
	ID    int
	Name  string
	Email string
	Phone string
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	GetAll(ctx context.Context, pagination Pagination) ([]*Customer, *Metadata, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	GetById(ctx context.Context, id int) (*Customer, error)
}
