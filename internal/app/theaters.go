package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jopa26/MovieBookingProject/api"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

func (app *application) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := app.theaterRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.TheaterResponse, len(theaters))
	for i, theater := range theaters {
		responses[i] = api.TheaterResponse{
			ID:       theater.ID,
			Name:     theater.Name,
			Location: theater.Location,
		}
	}

	err = app.writeJSON(w, http.StatusOK, responses, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheaterRequest

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

	theater := &domain.Theater{
		ID:       orNewID(input.ID),
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.theaterRepo.Create(r.Context(), theater)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord), errors.Is(err, domain.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.TheaterResponse{ID: theater.ID, Name: theater.Name, Location: theater.Location}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetScreensByTheater(w http.ResponseWriter, r *http.Request) {
	theaterID := chi.URLParam(r, "theaterId")

	if _, err := app.theaterRepo.GetById(r.Context(), theaterID); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	screens, err := app.screenRepo.GetByTheater(r.Context(), theaterID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.ScreenResponse, len(screens))
	for i, screen := range screens {
		responses[i] = api.ScreenResponse{
			ID:          screen.ID,
			TheaterID:   screen.TheaterID,
			Rows:        screen.Rows,
			SeatsPerRow: screen.SeatsPerRow,
		}
	}

	err = app.writeJSON(w, http.StatusOK, responses, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateScreen(w http.ResponseWriter, r *http.Request) {
	var input api.CreateScreenRequest

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

	screen := &domain.Screen{
		ID:          orNewID(input.ID),
		TheaterID:   input.TheaterID,
		Rows:        input.Rows,
		SeatsPerRow: input.SeatsPerRow,
	}

	err = app.screenRepo.Create(r.Context(), screen)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.logger.Warn("screen creation for unknown theater", "theater_id", input.TheaterID)
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrDuplicateRecord), errors.Is(err, domain.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ScreenResponse{
		ID:          screen.ID,
		TheaterID:   screen.TheaterID,
		Rows:        screen.Rows,
		SeatsPerRow: screen.SeatsPerRow,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
