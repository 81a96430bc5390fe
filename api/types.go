// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRequest covers both insert (id absent or 0) and update (id set).
type CustomerRequest struct {
	Id    int    `json:"id,omitempty"`
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

type CustomerResponse struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Metadata  *Metadata          `json:"metadata,omitempty"`
}

type MovieRequest struct {
	Id    int    `json:"id,omitempty"`
	Title string `json:"title" validate:"required,max=255"`
}

type MovieResponse struct {
	Id    int    `json:"id"`
	Title string `json:"title"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type RentalRequest struct {
	DaysRented    int             `json:"daysRented" validate:"required,gt=0"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,payment_method"`
	PaymentValue  decimal.Decimal `json:"paymentValue" validate:"required,gt=0"`
	CustomerId    int             `json:"customerId" validate:"required,gt=0"`
	MovieId       int             `json:"movieId" validate:"required,gt=0"`
}

type RentalResponse struct {
	Id            int               `json:"id"`
	DaysRented    int               `json:"daysRented"`
	PaymentMethod string            `json:"paymentMethod"`
	PaymentValue  decimal.Decimal   `json:"paymentValue"`
	CustomerId    int               `json:"customerId"`
	MovieId       int               `json:"movieId"`
	CreatedAt     time.Time         `json:"createdAt"`
	Customer      *CustomerResponse `json:"customer,omitempty"`
	Movie         *MovieResponse    `json:"movie,omitempty"`
}

type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

// Reason codes attached to ErrorResponse.Code so callers can tell apart
// failure categories that share a status code.
const (
	CodeNotFound                 = "not_found"
	CodeCustomerAlreadyExists    = "customer_already_exists"
	CodeUnsupportedPaymentMethod = "unsupported_payment_method"
	CodePaymentFailed            = "payment_failed"
	CodeStorageFailure           = "storage_failure"
	CodeInternal                 = "internal_error"
)

type ErrorResponse struct {
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
