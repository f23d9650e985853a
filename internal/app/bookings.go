package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jopa26/MovieBookingProject/api"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	booking, err := app.bookings.BookSeats(r.Context(), input.ShowID, input.Seats, input.UserName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatUnavailable):
			app.logger.Warn("booking conflict", "show_id", input.ShowID, "seats", input.Seats)
			app.seatUnavailableResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	booking, err := app.ledger.GetById(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetBookingsByShow lists the live bookings of a show, sorted by booking
// id. The show itself is not checked: a show with no bookings and an
// unknown show both yield an empty list, matching the list-query policy.
func (app *application) GetBookingsByShow(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")

	bookings, err := app.ledger.GetByShow(r.Context(), showID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = toBookingResponse(booking)
	}

	err = app.writeJSON(w, http.StatusOK, responses, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	err := app.bookings.CancelBooking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrInvalidInput):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		ID:        booking.ID,
		UserName:  booking.UserName,
		ShowID:    booking.ShowID,
		Seats:     booking.Seats,
		CreatedAt: booking.CreatedAt,
	}
}
