package payment

import (
	"fmt"

	"github.com/movierental/movie-rental-service/internal/domain"
)

// Resolver maps a payment method to its provider. The mapping is fixed at
// construction time and fails closed on methods outside it. Providers are
// stateless and shared, so a single Resolver is safe for concurrent use.
type Resolver struct {
	providers map[domain.PaymentMethod]domain.PaymentProvider
}

func NewResolver(providers map[domain.PaymentMethod]domain.PaymentProvider) *Resolver {
	return &Resolver{providers: providers}
}

// NewDefaultResolver wires the two supported payment methods.
func NewDefaultResolver() *Resolver {
	return NewResolver(map[domain.PaymentMethod]domain.PaymentProvider{
		domain.PaymentMethodMBWay:  NewMBWayProvider(),
		domain.PaymentMethodPayPal: NewPayPalProvider(),
	})
}

func (r *Resolver) Resolve(method domain.PaymentMethod) (domain.PaymentProvider, error) {
	provider, ok := r.providers[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPaymentMethod, method)
	}

	return provider, nil
}
