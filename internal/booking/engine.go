// Package booking implements the seat reservation engine. All mutations of
// a show's booked-seat set happen here, serialized per show, so a booking
// either commits every requested seat or none of them.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

const DefaultUserName = "Guest"

type Engine struct {
	shows   domain.ShowRepository
	screens domain.ScreenRepository
	ledger  domain.BookingLedger
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(
	shows domain.ShowRepository,
	screens domain.ScreenRepository,
	ledger domain.BookingLedger,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		shows:   shows,
		screens: screens,
		ledger:  ledger,
		logger:  logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

// showLock returns the mutex dedicated to a show, creating it on first use.
// Locks are keyed by show id rather than by the Show value, so every caller
// referencing the same show contends on the same mutex. Entries are never
// removed; the map is bounded by the number of shows.
func (e *Engine) showLock(showID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[showID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[showID] = lock
	}

	return lock
}

// BookSeats reserves the given seats on a show for userName and returns the
// recorded booking. The seat list is normalized (trimmed, uppercased,
// de-duplicated) before validation. Validation of every seat happens before
// any mutation: a seat that is out of bounds for the screen and a seat that
// is already taken both abort the whole request with ErrSeatUnavailable,
// leaving the booked set untouched.
func (e *Engine) BookSeats(ctx context.Context, showID string, seats []string, userName string) (*domain.Booking, error) {
	showID = strings.TrimSpace(showID)
	if showID == "" {
		return nil, fmt.Errorf("%w: show id is required", domain.ErrInvalidInput)
	}

	normalized := domain.NormalizeSeats(seats)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: at least one seat is required", domain.ErrInvalidInput)
	}

	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = DefaultUserName
	}

	lock := e.showLock(showID)
	lock.Lock()
	defer lock.Unlock()

	show, err := e.shows.GetById(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", showID, err)
	}

	screen, err := e.screens.GetById(ctx, show.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("screen %s: %w", show.ScreenID, err)
	}

	for _, seat := range normalized {
		if !screen.SeatExists(seat) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSeatUnavailable, seat)
		}

		if _, taken := show.BookedSeats[seat]; taken {
			return nil, fmt.Errorf("%w: %s", domain.ErrSeatUnavailable, seat)
		}
	}

	for _, seat := range normalized {
		show.BookedSeats[seat] = struct{}{}
	}

	booking := &domain.Booking{
		ID:        e.ledger.NextBookingID(),
		UserName:  userName,
		ShowID:    showID,
		Seats:     normalized,
		CreatedAt: time.Now(),
	}

	if err := e.ledger.Record(ctx, booking); err != nil {
		// Roll the seats back so the booked set never claims seats that
		// no live booking references.
		for _, seat := range normalized {
			delete(show.BookedSeats, seat)
		}

		return nil, fmt.Errorf("recording booking: %w", err)
	}

	e.logger.Info("seats booked",
		"booking_id", booking.ID, "show_id", showID, "seats", normalized, "user", userName)

	return booking, nil
}

// CancelBooking frees every seat of the booking and deletes its record.
// Seat removal is unconditional; a seat already absent from the booked set
// is not an error. Cancelling the same id twice fails with
// ErrRecordNotFound the second time and mutates nothing.
func (e *Engine) CancelBooking(ctx context.Context, bookingID string) error {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return fmt.Errorf("%w: booking id is required", domain.ErrInvalidInput)
	}

	booking, err := e.ledger.GetById(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("booking %s: %w", bookingID, err)
	}

	lock := e.showLock(booking.ShowID)
	lock.Lock()
	defer lock.Unlock()

	// Re-check under the show lock: a concurrent cancel of the same id may
	// have already freed the seats, and they may since have been re-booked.
	booking, err = e.ledger.GetById(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("booking %s: %w", bookingID, err)
	}

	show, err := e.shows.GetById(ctx, booking.ShowID)
	if err != nil {
		return fmt.Errorf("show %s: %w", booking.ShowID, err)
	}

	for _, seat := range booking.Seats {
		delete(show.BookedSeats, seat)
	}

	if err := e.ledger.Remove(ctx, bookingID); err != nil {
		return fmt.Errorf("removing booking %s: %w", bookingID, err)
	}

	e.logger.Info("booking cancelled",
		"booking_id", bookingID, "show_id", booking.ShowID, "seats", booking.Seats)

	return nil
}

// AvailableSeats lists the free seats of a show in row-major order. An
// unknown show yields an empty list rather than an error, so the query is
// safe to ask about a show that no longer exists.
func (e *Engine) AvailableSeats(ctx context.Context, showID string) []string {
	status, err := e.SeatStatus(ctx, showID)
	if err != nil {
		return []string{}
	}

	screen := &domain.Screen{Rows: status.Rows, SeatsPerRow: status.SeatsPerRow}
	available := []string{}

	for _, seat := range screen.SeatSpace() {
		if _, taken := status.Booked[seat]; !taken {
			available = append(available, seat)
		}
	}

	return available
}

// SeatStatus returns a snapshot of a show's occupancy for rendering. The
// copy is taken under the show lock, so it never reflects a partially
// applied booking. A missing show or screen is reported as
// ErrRecordNotFound, unlike AvailableSeats.
func (e *Engine) SeatStatus(ctx context.Context, showID string) (*domain.SeatMap, error) {
	showID = strings.TrimSpace(showID)
	if showID == "" {
		return nil, fmt.Errorf("%w: show id is required", domain.ErrInvalidInput)
	}

	lock := e.showLock(showID)
	lock.Lock()
	defer lock.Unlock()

	show, err := e.shows.GetById(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", showID, err)
	}

	screen, err := e.screens.GetById(ctx, show.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("screen %s: %w", show.ScreenID, err)
	}

	booked := make(map[string]struct{}, len(show.BookedSeats))
	for seat := range show.BookedSeats {
		booked[seat] = struct{}{}
	}

	return &domain.SeatMap{
		ShowID:      showID,
		Rows:        screen.Rows,
		SeatsPerRow: screen.SeatsPerRow,
		Booked:      booked,
	}, nil
}

var _ domain.BookingService = (*Engine)(nil)
