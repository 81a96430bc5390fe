package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodMBWay  PaymentMethod = "mbway"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodMBWay, PaymentMethodPayPal:
		return true
	}

	return false
}

// Rental is immutable once persisted; there is no update path.
type Rental struct {
	ID            int
	DaysRented    int
	PaymentMethod PaymentMethod
	PaymentValue  decimal.Decimal
	CustomerID    int
	MovieID       int
	CreatedAt     time.Time

	// Customer and Movie are populated by read queries only. Writes carry
	// the foreign keys and leave both nil.
	Customer *Customer
	Movie    *Movie
}

type RentalRepository interface {
	Create(ctx context.Context, rental *Rental) error
	GetByCustomerName(ctx context.Context, customerName string) ([]*Rental, error)
}

// PaymentProvider settles one payment method. A false result means the
// settlement was declined; an error means the provider itself failed
// (network, auth). Each call is a fresh settlement attempt, so callers
// must not call Pay twice for one logical booking.
type PaymentProvider interface {
	Pay(ctx context.Context, amount decimal.Decimal) (bool, error)
}
