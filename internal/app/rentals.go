package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/movierental/movie-rental-service/api"
	"github.com/movierental/movie-rental-service/internal/domain"
)

// CreateRental runs the booking transaction: validate, check that the
// referenced customer and movie exist, settle the payment, then persist.
// The rental must never reach storage unless its payment succeeded, so the
// write only starts after the provider has reported success.
func (app *Application) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req api.RentalRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	rental := domain.Rental{
		DaysRented:    req.DaysRented,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentValue:  req.PaymentValue,
		CustomerID:    req.CustomerId,
		MovieID:       req.MovieId,
	}

	_, err = app.customerRepo.GetById(r.Context(), rental.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("customer with id %d not found", rental.CustomerID))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	_, err = app.movieRepo.GetById(r.Context(), rental.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("movie with id %d not found", rental.MovieID))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	provider, err := app.payments.Resolve(rental.PaymentMethod)
	if err != nil {
		app.unsupportedPaymentMethodResponse(w, r, err)
		return
	}

	// A fresh settlement attempt happens exactly once per booking. A
	// provider fault or timeout counts as a failed payment, never as a
	// "maybe succeeded, write anyway" state.
	ctx, cancel := context.WithTimeout(r.Context(), app.config.PaymentTimeout)
	defer cancel()

	paid, err := provider.Pay(ctx, rental.PaymentValue)
	if err != nil {
		app.logError(r, fmt.Errorf("payment provider fault: %w", err))
		app.paymentFailedResponse(w, r)
		return
	}

	if !paid {
		app.paymentFailedResponse(w, r)
		return
	}

	err = app.rentalRepo.Create(r.Context(), &rental)
	if err != nil {
		app.storageFailureResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toRentalResponse(&rental), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetRentals searches rentals by the linked customer's name. A blank name
// is answered with an empty list rather than an error or a full listing.
func (app *Application) GetRentals(w http.ResponseWriter, r *http.Request) {
	customerName := r.URL.Query().Get("customerName")

	if strings.TrimSpace(customerName) == "" {
		resp := api.RentalListResponse{Rentals: []api.RentalResponse{}}

		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	rentals, err := app.rentalRepo.GetByCustomerName(r.Context(), customerName)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RentalListResponse{Rentals: toRentalResponses(rentals)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toRentalResponse(rental *domain.Rental) api.RentalResponse {
	if rental == nil {
		return api.RentalResponse{}
	}

	resp := api.RentalResponse{
		Id:            rental.ID,
		DaysRented:    rental.DaysRented,
		PaymentMethod: string(rental.PaymentMethod),
		PaymentValue:  rental.PaymentValue,
		CustomerId:    rental.CustomerID,
		MovieId:       rental.MovieID,
		CreatedAt:     rental.CreatedAt,
	}

	if rental.Customer != nil {
		customer := toCustomerResponse(rental.Customer)
		resp.Customer = &customer
	}

	if rental.Movie != nil {
		movie := toMovieResponse(rental.Movie)
		resp.Movie = &movie
	}

	return resp
}

func toRentalResponses(rentals []*domain.Rental) []api.RentalResponse {
	responses := make([]api.RentalResponse, len(rentals))
	for i, rental := range rentals {
		responses[i] = toRentalResponse(rental)
	}

	return responses
}
