package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jopa26/MovieBookingProject/api"
	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

// GetSeatMapByShow renders the occupancy grid of a show. Unlike the
// available-seats listing, a map for a show that does not exist is a 404:
// the caller is about to draw it.
func (app *application) GetSeatMapByShow(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")

	status, err := app.bookings.SeatStatus(r.Context(), showID)
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

	resp := toSeatMapResponse(status)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetAvailableSeats lists the free seats of a show in row-major order. An
// unknown show degrades to an empty list so the query stays safe to ask
// about a show that was never created or has since been removed.
func (app *application) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")

	resp := api.AvailableSeatsResponse{
		ShowId: showID,
		Seats:  app.bookings.AvailableSeats(r.Context(), showID),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(status *domain.SeatMap) api.SeatMapResponse {
	seatRows := make([]api.SeatRow, status.Rows)

	for row := 0; row < status.Rows; row++ {
		seatRow := api.SeatRow{Row: row + 1, Seats: make([]api.Seat, status.SeatsPerRow)}

		for col := 0; col < status.SeatsPerRow; col++ {
			id := domain.SeatID(row, col)
			_, taken := status.Booked[id]

			seatRow.Seats[col] = api.Seat{
				ID:        id,
				Row:       row + 1,
				Column:    col + 1,
				Available: !taken,
			}
		}

		seatRows[row] = seatRow
	}

	return api.SeatMapResponse{
		ShowId:      status.ShowID,
		Rows:        status.Rows,
		SeatsPerRow: status.SeatsPerRow,
		SeatRows:    seatRows,
	}
}
