package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/movierental/movie-rental-service/api"
	appvalidator "github.com/movierental/movie-rental-service/internal/validator"
)

const (
	ErrInternalServer = "The server encountered a problem and could not process your request"
	ErrNotFound       = "The requested resource not found"
	ErrPaymentFailed  = "Payment failed, the rental was not booked"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code and reason code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := api.ErrorResponse{
		Code:      code,
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, api.CodeInternal, ErrInternalServer)
}

// storageFailureResponse reports a rental write that failed after its payment
// succeeded. The payment is not rolled back here; the correlation id ties the
// log line to the response so the booking can be reconciled by hand.
func (app *Application) storageFailureResponse(w http.ResponseWriter, r *http.Request, err error) {
	correlationId := uuid.NewString()

	app.logger.Error("rental write failed after successful payment",
		"error", err.Error(),
		"method", r.Method,
		"uri", r.URL.RequestURI(),
		"correlationId", correlationId,
	)

	app.errorResponse(w, r, http.StatusInternalServerError, api.CodeStorageFailure, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, api.CodeNotFound, ErrNotFound)
}

func (app *Application) notFoundResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, api.CodeNotFound, err.Error())
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, "", err.Error())
}

func (app *Application) customerExistsResponse(w http.ResponseWriter, r *http.Request) {
	message := "A customer with this email already exists"
	app.errorResponse(w, r, http.StatusUnprocessableEntity, api.CodeCustomerAlreadyExists, message)
}

func (app *Application) unsupportedPaymentMethodResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, api.CodeUnsupportedPaymentMethod, err.Error())
}

func (app *Application) paymentFailedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusPaymentRequired, api.CodePaymentFailed, ErrPaymentFailed)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		app.serverErrorResponse(w, r, err)
		return
	}

	errs := make([]api.ValidationError, len(validationErrors))
	for i, fieldError := range validationErrors {
		errs[i] = api.ValidationError{
			Field: fieldError.Field(),
			Issue: appvalidator.ValidationMessage(fieldError),
		}
	}

	resp := api.ValidationErrorResponse{
		Message:          "The request contains invalid fields",
		ValidationErrors: errs,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	writeErr := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if writeErr != nil {
		app.logError(r, writeErr)
		w.WriteHeader(500)
	}
}
