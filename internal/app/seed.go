package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

// seedDemoData loads a small catalog through the normal repositories so a
// freshly started server has something to book against.
func (app *application) seedDemoData(ctx context.Context) error {
	movies := []*domain.Movie{
		{ID: "movie-inception", Title: "Inception", Genre: "Sci-Fi", Duration: 148, Rating: decimal.NewFromFloat(8.8)},
		{ID: "movie-interstellar", Title: "Interstellar", Genre: "Sci-Fi", Duration: 169, Rating: decimal.NewFromFloat(8.7)},
		{ID: "movie-up", Title: "Up", Genre: "Animation", Duration: 96, Rating: decimal.NewFromFloat(8.3)},
	}

	for _, movie := range movies {
		if err := app.movieRepo.Create(ctx, movie); err != nil {
			return err
		}
	}

	theater := &domain.Theater{ID: "theater-grand", Name: "Grand Cinema", Location: "Downtown"}
	if err := app.theaterRepo.Create(ctx, theater); err != nil {
		return err
	}

	screens := []*domain.Screen{
		{ID: "screen-1", TheaterID: theater.ID, Rows: 10, SeatsPerRow: 10},
		{ID: "screen-2", TheaterID: theater.ID, Rows: 5, SeatsPerRow: 8},
	}

	for _, screen := range screens {
		if err := app.screenRepo.Create(ctx, screen); err != nil {
			return err
		}
	}

	tonight := time.Now().Truncate(time.Hour).Add(3 * time.Hour)

	shows := []*domain.Show{
		{ID: "show-1", MovieID: "movie-inception", ScreenID: "screen-1", StartTime: tonight},
		{ID: "show-2", MovieID: "movie-inception", ScreenID: "screen-1", StartTime: tonight.Add(3 * time.Hour)},
		{ID: "show-3", MovieID: "movie-interstellar", ScreenID: "screen-2", StartTime: tonight},
		{ID: "show-4", MovieID: "movie-up", ScreenID: "screen-2", StartTime: tonight.Add(3 * time.Hour)},
	}

	for _, show := range shows {
		if err := app.showRepo.Create(ctx, show); err != nil {
			return err
		}
	}

	app.logger.Info("seeded demo catalog",
		"movies", len(movies), "screens", len(screens), "shows", len(shows))

	return nil
}
