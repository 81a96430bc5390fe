// Package client is a Go adapter for the movie rental API. It mirrors the
// desktop client's behavior over the same contract: the customer and movie
// listings are served from a local read-through cache that is invalidated on
// every mutating call, and a booking that is already in flight blocks a
// second submission from the same client instance. The server stays
// authoritative; nothing here relaxes its invariants.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/movierental/movie-rental-service/api"
)

// ErrBookingInProgress is returned when a rental booking is submitted while
// a previous one from the same client has not completed.
var ErrBookingInProgress = errors.New("a rental booking is already in progress")

// APIError is a non-2xx response decoded into the API's error contract.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d, code %q): %s", e.Status, e.Code, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.Mutex
	customers []api.CustomerResponse
	movies    []api.MovieResponse

	bookingInFlight atomic.Bool
}

// New builds a client for the given base address. The *http.Client is owned
// by the caller so its pooling and TLS settings stay in one place; passing
// nil selects a default with a 10 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Customers returns the default page of customers, name ascending. The
// result is cached until the next mutating call.
func (c *Client) Customers(ctx context.Context) ([]api.CustomerResponse, error) {
	c.mu.Lock()
	cached := c.customers
	c.mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	var resp api.CustomerListResponse
	err := c.do(ctx, http.MethodGet, "/customer", nil, &resp)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.customers = resp.Customers
	c.mu.Unlock()

	return resp.Customers, nil
}

// CustomersPage bypasses the cache and fetches an explicit page window.
func (c *Client) CustomersPage(ctx context.Context, pageSize, pageNumber int) (*api.CustomerListResponse, error) {
	var resp api.CustomerListResponse

	err := c.do(ctx, http.MethodGet, pagedPath("/customer", pageSize, pageNumber), nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req api.CustomerRequest) (*api.CustomerResponse, error) {
	var resp api.CustomerResponse

	err := c.do(ctx, http.MethodPost, "/customer", req, &resp)
	if err != nil {
		return nil, err
	}

	c.invalidate()

	return &resp, nil
}

// Movies returns the default page of movies, title ascending, cached until
// the next mutating call.
func (c *Client) Movies(ctx context.Context) ([]api.MovieResponse, error) {
	c.mu.Lock()
	cached := c.movies
	c.mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	var resp api.MovieListResponse
	err := c.do(ctx, http.MethodGet, "/movie", nil, &resp)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.movies = resp.Movies
	c.mu.Unlock()

	return resp.Movies, nil
}

// MoviesPage bypasses the cache and fetches an explicit page window.
func (c *Client) MoviesPage(ctx context.Context, pageSize, pageNumber int) (*api.MovieListResponse, error) {
	var resp api.MovieListResponse

	err := c.do(ctx, http.MethodGet, pagedPath("/movie", pageSize, pageNumber), nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) CreateMovie(ctx context.Context, req api.MovieRequest) (*api.MovieResponse, error) {
	var resp api.MovieResponse

	err := c.do(ctx, http.MethodPost, "/movie", req, &resp)
	if err != nil {
		return nil, err
	}

	c.invalidate()

	return &resp, nil
}

// CreateRental books a rental. Only one booking may be in flight per client
// instance; a concurrent second call fails fast with ErrBookingInProgress
// instead of risking a double settlement from an impatient resubmission.
func (c *Client) CreateRental(ctx context.Context, req api.RentalRequest) (*api.RentalResponse, error) {
	if !c.bookingInFlight.CompareAndSwap(false, true) {
		return nil, ErrBookingInProgress
	}
	defer c.bookingInFlight.Store(false)

	var resp api.RentalResponse

	err := c.do(ctx, http.MethodPost, "/rental", req, &resp)
	if err != nil {
		return nil, err
	}

	c.invalidate()

	return &resp, nil
}

// RentalsByCustomer searches rentals by customer name, newest first.
func (c *Client) RentalsByCustomer(ctx context.Context, customerName string) ([]api.RentalResponse, error) {
	path := "/rental?customerName=" + url.QueryEscape(customerName)

	var resp api.RentalListResponse
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Rentals, nil
}

func (c *Client) Health(ctx context.Context) (*api.HealthcheckResponse, error) {
	var resp api.HealthcheckResponse

	err := c.do(ctx, http.MethodGet, "/healthz", nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) invalidate() {
	c.mu.Lock()
	c.customers = nil
	c.movies = nil
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reqBody *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var errResp api.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&errResp); err != nil {
			return &APIError{Status: res.StatusCode}
		}

		return &APIError{
			Status:  res.StatusCode,
			Code:    errResp.Code,
			Message: errResp.Message,
		}
	}

	if dst == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(dst)
}

func pagedPath(path string, pageSize, pageNumber int) string {
	values := url.Values{}
	values.Set("pageSize", strconv.Itoa(pageSize))
	values.Set("pageNumber", strconv.Itoa(pageNumber))

	return path + "?" + values.Encode()
}
