package app

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Jopa26/MovieBookingProject/api"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

// GetShowtimesByMovie lists the shows of a movie by title, preferring an
// exact (case-insensitive) title match and falling back to a substring
// match. No match is an empty list, not a 404.
func (app *application) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	title, err := url.PathUnescape(chi.URLParam(r, "title"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shows, err := app.showRepo.GetByMovieTitle(r.Context(), title)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		MovieTitle: title,
		Shows:      toShowResponses(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowRequest

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

	show := &domain.Show{
		ID:        orNewID(input.ID),
		MovieID:   input.MovieID,
		ScreenID:  input.ScreenID,
		StartTime: input.StartTime,
	}

	err = app.showRepo.Create(r.Context(), show)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.logger.Warn("show creation with unknown reference",
				"movie_id", input.MovieID, "screen_id", input.ScreenID)
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrDuplicateRecord), errors.Is(err, domain.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowResponse(show), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowResponses(shows []*domain.Show) []api.ShowResponse {
	responses := make([]api.ShowResponse, len(shows))

	for i, show := range shows {
		responses[i] = toShowResponse(show)
	}

	return responses
}

func toShowResponse(show *domain.Show) api.ShowResponse {
	return api.ShowResponse{
		ID:        show.ID,
		MovieID:   show.MovieID,
		ScreenID:  show.ScreenID,
		StartTime: show.StartTime,
	}
}
