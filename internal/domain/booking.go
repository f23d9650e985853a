package domain

import (
	"context"
	"time"
)

// Booking is a committed reservation of one or more seats on a single show.
// Seats keeps the first-occurrence order of the normalized request and never
// changes after creation; cancellation deletes the record wholesale.
type Booking struct {
	ID        string
	UserName  string
	ShowID    string
	Seats     []string
	CreatedAt time.Time
}

// BookingLedger issues sequential booking identifiers and stores booking
// records keyed by identifier. Identifiers are unique for the lifetime of
// the process and are never reused, including after cancellation.
type BookingLedger interface {
	NextBookingID() string
	Record(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id string) (*Booking, error)
	GetByShow(ctx context.Context, showID string) ([]*Booking, error)
	Remove(ctx context.Context, id string) error
}

// SeatMap is a point-in-time copy of a show's occupancy, safe to render
// without holding any lock.
type SeatMap struct {
	ShowID      string
	Rows        int
	SeatsPerRow int
	Booked      map[string]struct{}
}

// BookingService is the contract the presentation layer consumes. All
// failures are returned as sentinel-wrapped errors, never panics.
type BookingService interface {
	BookSeats(ctx context.Context, showID string, seats []string, userName string) (*Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	AvailableSeats(ctx context.Context, showID string) []string
	SeatStatus(ctx context.Context, showID string) (*SeatMap, error)
}
