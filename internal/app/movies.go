package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Jopa26/MovieBookingProject/api"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

// GetMovies searches the catalog by title substring, case-insensitively.
// An empty term lists every movie, sorted by title.
func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")

	movies, err := app.movieRepo.Search(r.Context(), term)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: toMovieResponses(movies),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := &domain.Movie{
		ID:       orNewID(input.ID),
		Title:    strings.TrimSpace(input.Title),
		Genre:    input.Genre,
		Duration: input.Duration,
		Rating:   input.Rating,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord), errors.Is(err, domain.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// orNewID keeps a caller-chosen identifier or generates one when the field
// was left blank.
func orNewID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.NewString()
	}

	return id
}

func toMovieResponses(movies []*domain.Movie) []api.MovieResponse {
	responses := make([]api.MovieResponse, len(movies))

	for i, movie := range movies {
		responses[i] = toMovieResponse(movie)
	}

	return responses
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Genre:    movie.Genre,
		Duration: movie.Duration,
		Rating:   movie.Rating,
	}
}
