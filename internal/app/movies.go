package app

import (
	"errors"
	"net/http"

	"github.com/movierental/movie-rental-service/api"
	"github.com/movierental/movie-rental-service/internal/domain"
)

// SaveMovie mirrors SaveCustomer: id absent means insert, id set means
// update. Titles are not required to be unique.
func (app *Application) SaveMovie(w http.ResponseWriter, r *http.Request) {
	var req api.MovieRequest

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

	movie := domain.Movie{
		ID:    req.Id,
		Title: req.Title,
	}

	if movie.ID == 0 {
		err = app.movieRepo.Create(r.Context(), &movie)
	} else {
		err = app.movieRepo.Update(r.Context(), &movie)
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	pagination := readPagination(r)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieResponses(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	return api.MovieResponse{
		Id:    movie.ID,
		Title: movie.Title,
	}
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}
