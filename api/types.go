// Package api holds the JSON request and response shapes of the HTTP
// surface. They are kept free of domain types so handler payloads can
// evolve independently of the internal model.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateMovieRequest struct {
	ID       string          `json:"id"`
	Title    string          `json:"title" validate:"required,max=200"`
	Genre    string          `json:"genre" validate:"required,max=50"`
	Duration int             `json:"duration" validate:"required,min=1,max=600"`
	Rating   decimal.Decimal `json:"rating"`
}

type MovieResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Genre    string          `json:"genre"`
	Duration int             `json:"duration"`
	Rating   decimal.Decimal `json:"rating"`
}

type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

type CreateTheaterRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"required,max=200"`
}

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type CreateScreenRequest struct {
	ID          string `json:"id"`
	TheaterID   string `json:"theaterId" validate:"required"`
	Rows        int    `json:"rows" validate:"required,min=1,max=26"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,min=1,max=99"`
}

type ScreenResponse struct {
	ID          string `json:"id"`
	TheaterID   string `json:"theaterId"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seatsPerRow"`
}

type CreateShowRequest struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movieId" validate:"required"`
	ScreenID  string    `json:"screenId" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
}

type ShowResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movieId"`
	ScreenID  string    `json:"screenId"`
	StartTime time.Time `json:"startTime"`
}

type ShowtimeListResponse struct {
	MovieTitle string         `json:"movieTitle"`
	Shows      []ShowResponse `json:"shows"`
}

type Seat struct {
	ID        string `json:"id"`
	Row       int    `json:"row"`
	Column    int    `json:"column"`
	Available bool   `json:"available"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowId      string    `json:"showId"`
	Rows        int       `json:"rows"`
	SeatsPerRow int       `json:"seatsPerRow"`
	SeatRows    []SeatRow `json:"seatRows"`
}

type AvailableSeatsResponse struct {
	ShowId string   `json:"showId"`
	Seats  []string `json:"seats"`
}

type CreateBookingRequest struct {
	ShowID   string   `json:"showId" validate:"required"`
	Seats    []string `json:"seats" validate:"required,min=1,dive,seat_id"`
	UserName string   `json:"userName" validate:"max=100"`
}

type BookingResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	ShowID    string    `json:"showId"`
	Seats     []string  `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}
