package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movierental/movie-rental-service/internal/domain"
)

type PostgresRentalRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRentalRepository(db *pgxpool.Pool) *PostgresRentalRepository {
	return &PostgresRentalRepository{
		db: db,
	}
}

func (p *PostgresRentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals (days_rented, payment_method, payment_value, customer_id, movie_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		rental.DaysRented,
		rental.PaymentMethod,
		rental.PaymentValue,
		rental.CustomerID,
		rental.MovieID).Scan(&rental.ID, &rental.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

// GetByCustomerName matches the linked customer's name by case-insensitive
// substring and hydrates both navigation entities. Most recent rental first.
func (p *PostgresRentalRepository) GetByCustomerName(
	ctx context.Context,
	customerName string) ([]*domain.Rental, error) {

	query := `
		SELECT
			r.id,
			r.days_rented,
			r.payment_method,
			r.payment_value,
			r.customer_id,
			r.movie_id,
			r.created_at,
			c.id,
			c.name,
			c.email,
			c.phone,
			m.id,
			m.title
		FROM rentals r
		JOIN customers c ON r.customer_id = c.id
		JOIN movies m ON r.movie_id = m.id
		WHERE position(lower($1) in lower(c.name)) > 0
		ORDER BY r.id DESC
	`

	rows, err := p.db.Query(ctx, query, customerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rentals := make([]*domain.Rental, 0)

	for rows.Next() {
		var rental domain.Rental
		var customer domain.Customer
		var movie domain.Movie

		err := rows.Scan(
			&rental.ID,
			&rental.DaysRented,
			&rental.PaymentMethod,
			&rental.PaymentValue,
			&rental.CustomerID,
			&rental.MovieID,
			&rental.CreatedAt,
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
			&movie.ID,
			&movie.Title,
		)

		if err != nil {
			return nil, err
		}

		rental.Customer = &customer
		rental.Movie = &movie

		rentals = append(rentals, &rental)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rentals, nil
}
