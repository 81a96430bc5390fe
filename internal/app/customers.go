package app

import (
	"errors"
	"net/http"

	"github.com/movierental/movie-rental-service/api"
	"github.com/movierental/movie-rental-service/internal/domain"
)

// SaveCustomer inserts when the body carries no id and updates otherwise.
// New customers must not reuse an existing customer's email.
func (app *Application) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var req api.CustomerRequest

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

	customer := domain.Customer{
		ID:    req.Id,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if customer.ID == 0 {
		err = app.customerRepo.Create(r.Context(), &customer)
	} else {
		err = app.customerRepo.Update(r.Context(), &customer)
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerAlreadyExists):
			app.customerExistsResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toCustomerResponse(&customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListCustomers(w http.ResponseWriter, r *http.Request) {
	pagination := readPagination(r)

	customers, metadata, err := app.customerRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CustomerListResponse{
		Customers: toCustomerResponses(customers),
		Metadata:  toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCustomerResponse(customer *domain.Customer) api.CustomerResponse {
	if customer == nil {
		return api.CustomerResponse{}
	}

	return api.CustomerResponse{
		Id:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

func toCustomerResponses(customers []*domain.Customer) []api.CustomerResponse {
	responses := make([]api.CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = toCustomerResponse(customer)
	}

	return responses
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
