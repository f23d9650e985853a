package domain

import (
	"context"
	"time"
)

// Show is a scheduled screening of a movie on a specific screen. BookedSeats
// is the single source of truth for occupancy and holds canonical uppercase
// seat identifiers. It is mutated exclusively by the booking engine while
// holding that show's lock; everyone else must go through the engine's
// snapshot queries.
type Show struct {
	ID          string
	MovieID     string
	ScreenID    string
	StartTime   time.Time
	BookedSeats map[string]struct{}
}

type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	GetById(ctx context.Context, id string) (*Show, error)
	GetByMovieTitle(ctx context.Context, title string) ([]*Show, error)
}
