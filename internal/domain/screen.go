package domain

import "context"

// Screen is a physical seating grid belonging to a theater. Its row and
// column counts define the valid seat coordinate space for every show
// scheduled on it.
type Screen struct {
	ID          string
	TheaterID   string
	Rows        int
	SeatsPerRow int
}

// SeatExists reports whether id parses as a seat identifier that falls
// inside this screen's grid.
func (s *Screen) SeatExists(id string) bool {
	row, col, err := ParseSeat(id)
	if err != nil {
		return false
	}

	return row < s.Rows && col < s.SeatsPerRow
}

// SeatSpace returns every seat identifier of the screen in row-major
// order: A1..A<n>, B1..B<n>, and so on.
func (s *Screen) SeatSpace() []string {
	seats := make([]string, 0, s.Rows*s.SeatsPerRow)

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.SeatsPerRow; col++ {
			seats = append(seats, SeatID(row, col))
		}
	}

	return seats
}

type ScreenRepository interface {
	Create(ctx context.Context, screen *Screen) error
	GetById(ctx context.Context, id string) (*Screen, error)
	GetByTheater(ctx context.Context, theaterID string) ([]*Screen, error)
}
