package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

type MockProvider struct {
	PayFunc func(ctx context.Context, amount decimal.Decimal) (bool, error)
}

func (m *MockProvider) Pay(ctx context.Context, amount decimal.Decimal) (bool, error) {
	return m.PayFunc(ctx, amount)
}
