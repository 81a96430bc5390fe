package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/movierental/movie-rental-service/api"
	"github.com/movierental/movie-rental-service/internal/mocks"
	"github.com/movierental/movie-rental-service/internal/payment"
	"github.com/movierental/movie-rental-service/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env:            "test",
			PaymentTimeout: 5 * time.Second,
		},
		validator:    validator.NewValidator(),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		customerRepo: &mocks.MockCustomerRepo{},
		movieRepo:    &mocks.MockMovieRepo{},
		rentalRepo:   &mocks.MockRentalRepo{},
		payments:     payment.NewDefaultResolver(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		if wantErrMessage == "" {
			return
		}

		// The body is either a validation response or a plain error
		// response with a reason code; accept the message from either.
		var raw map[string]any
		if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if msg, ok := raw["message"].(string); ok && msg == wantErrMessage {
			return
		}

		if rawErrs, ok := raw["validationErrors"].([]any); ok {
			for _, rawErr := range rawErrs {
				if m, ok := rawErr.(map[string]any); ok && m["issue"] == wantErrMessage {
					return
				}
			}
		}

		t.Errorf("Expected error message %q not found in response", wantErrMessage)

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}
