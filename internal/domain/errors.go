package domain

import "errors"

var (
	ErrRecordNotFound           = errors.New("record not found")
	ErrCustomerAlreadyExists    = errors.New("customer already exists with this email")
	ErrPaymentFailed            = errors.New("payment failed")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
)
