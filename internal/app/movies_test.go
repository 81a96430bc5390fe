package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/movierental/movie-rental-service/api"
	"github.com/movierental/movie-rental-service/internal/domain"
	"github.com/movierental/movie-rental-service/internal/mocks"
	"github.com/movierental/movie-rental-service/internal/validator"
)

func TestSaveMovie(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFunc     func(context.Context, *domain.Movie) error
		updateFunc     func(context.Context, *domain.Movie) error
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.MovieResponse
	}{
		{
			name: "zero id inserts",
			body: api.MovieRequest{Title: "Heat"},
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				movie.ID = 5
				return nil
			},
			wantStatus:   http.StatusCreated,
			wantResponse: &api.MovieResponse{Id: 5, Title: "Heat"},
		},
		{
			name: "nonzero id updates",
			body: api.MovieRequest{Id: 5, Title: "Heat (Director's Cut)"},
			updateFunc: func(ctx context.Context, movie *domain.Movie) error {
				return nil
			},
			wantStatus:   http.StatusCreated,
			wantResponse: &api.MovieResponse{Id: 5, Title: "Heat (Director's Cut)"},
		},
		{
			name: "updating a missing id fails with not found",
			body: api.MovieRequest{Id: 99, Title: "Ghost"},
			updateFunc: func(ctx context.Context, movie *domain.Movie) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "missing title",
			body:           api.MovieRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name: "database error",
			body: api.MovieRequest{Title: "Heat"},
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				return fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.movieRepo = &mocks.MockMovieRepo{
					CreateFunc: tt.createFunc,
					UpdateFunc: tt.updateFunc,
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/movie", tt.body)

			app.SaveMovie(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("SaveMovie() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.MovieResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("SaveMovie() response mismatch (-want +got):\n%s", diff)
				}

				return
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestListMovies(t *testing.T) {
	app := newTestApplication(func(a *Application) {
		a.movieRepo = &mocks.MockMovieRepo{
			GetAllFunc: func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {
				movies := []*domain.Movie{
					{ID: 2, Title: "Heat"},
					{ID: 1, Title: "Ronin"},
				}

				return movies, domain.NewMetadata(2, pagination.Page, pagination.PageSize), nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/movie", nil)

	app.ListMovies(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("ListMovies() status = %v, want %v", w.Code, http.StatusOK)
	}

	var response api.MovieListResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := api.MovieListResponse{
		Movies: []api.MovieResponse{
			{Id: 2, Title: "Heat"},
			{Id: 1, Title: "Ronin"},
		},
		Metadata: &api.Metadata{
			CurrentPage:  1,
			FirstPage:    1,
			LastPage:     1,
			PageSize:     100,
			TotalRecords: 2,
		},
	}

	if diff := cmp.Diff(&want, &response); diff != "" {
		t.Errorf("ListMovies() response mismatch (-want +got):\n%s", diff)
	}
}
