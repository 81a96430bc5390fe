package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movierental/movie-rental-service/internal/domain"
)

type PostgresCustomerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCustomerRepository(db *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db: db,
	}
}

// Create inserts a new customer. The email-uniqueness check and the insert
// run in one transaction so two concurrent signups with the same email
// cannot both pass the check; the unique index backs this up either way.
func (p *PostgresCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		if customer.Email != "" {
			var existingId int

			err := tx.QueryRow(ctx,
				`SELECT id FROM customers WHERE lower(email) = lower($1)`,
				customer.Email).Scan(&existingId)

			if err == nil {
				return domain.ErrCustomerAlreadyExists
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
		}

		query := `INSERT INTO customers (name, email, phone)
			VALUES ($1, $2, $3)
			RETURNING id`

		err := tx.QueryRow(ctx, query, customer.Name, customer.Email, customer.Phone).Scan(&customer.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrCustomerAlreadyExists
			}

			return err
		}

		return nil
	})
}

func (p *PostgresCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `UPDATE customers
		SET name = $1, email = $2, phone = $3
		WHERE id = $4`

	tag, err := p.db.Exec(ctx, query, customer.Name, customer.Email, customer.Phone, customer.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrCustomerAlreadyExists
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresCustomerRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Customer, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), id, name, email, phone
		FROM customers
		ORDER BY name, id
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	customers := []*domain.Customer{}

	for rows.Next() {
		var customer domain.Customer

		err := rows.Scan(
			&totalRecords,
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Phone,
		)

		if err != nil {
			return nil, nil, err
		}

		customers = append(customers, &customer)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return customers, metadata, nil
}

func (p *PostgresCustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT id, name, email, phone
		FROM customers
		WHERE lower(email) = lower($1)`

	var customer domain.Customer

	err := p.db.QueryRow(ctx, query, email).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &customer, nil
}

func (p *PostgresCustomerRepository) GetById(ctx context.Context, id int) (*domain.Customer, error) {
	query := `SELECT id, name, email, phone
		FROM customers
		WHERE id = $1`

	var customer domain.Customer

	err := p.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &customer, nil
}
