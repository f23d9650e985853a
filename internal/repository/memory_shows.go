package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MemoryShowRepository struct {
	mu      sync.RWMutex
	shows   map[string]*domain.Show
	movies  domain.MovieRepository
	screens domain.ScreenRepository
}

func NewMemoryShowRepository(movies domain.MovieRepository, screens domain.ScreenRepository) *MemoryShowRepository {
	return &MemoryShowRepository{
		shows:   make(map[string]*domain.Show),
		movies:  movies,
		screens: screens,
	}
}

func (m *MemoryShowRepository) Create(ctx context.Context, show *domain.Show) error {
	if strings.TrimSpace(show.ID) == "" {
		return fmt.Errorf("%w: show id is required", domain.ErrInvalidInput)
	}

	if _, err := m.movies.GetById(ctx, show.MovieID); err != nil {
		return fmt.Errorf("movie %s: %w", show.MovieID, err)
	}

	if _, err := m.screens.GetById(ctx, show.ScreenID); err != nil {
		return fmt.Errorf("screen %s: %w", show.ScreenID, err)
	}

	if show.BookedSeats == nil {
		show.BookedSeats = make(map[string]struct{})
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shows[show.ID]; ok {
		return fmt.Errorf("%w: show %s", domain.ErrDuplicateRecord, show.ID)
	}

	m.shows[show.ID] = show

	return nil
}

// GetById returns the shared *Show instance. The booking engine relies on
// this: all callers that mutate BookedSeats see the same map, guarded by
// the engine's per-show lock.
func (m *MemoryShowRepository) GetById(ctx context.Context, id string) (*domain.Show, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	show, ok := m.shows[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return show, nil
}

// GetByMovieTitle lists the shows of the movie whose title matches exactly
// (case-insensitive), falling back to a substring match when no exact title
// exists. Results are sorted by start time; no match yields an empty slice.
func (m *MemoryShowRepository) GetByMovieTitle(ctx context.Context, title string) ([]*domain.Show, error) {
	candidates, err := m.movies.Search(ctx, title)
	if err != nil {
		return nil, err
	}

	matched := map[string]bool{}
	for _, movie := range candidates {
		if strings.EqualFold(movie.Title, title) {
			matched = map[string]bool{movie.ID: true}
			break
		}
		matched[movie.ID] = true
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	shows := []*domain.Show{}

	for _, show := range m.shows {
		if matched[show.MovieID] {
			shows = append(shows, show)
		}
	}

	sort.Slice(shows, func(i, j int) bool {
		return shows[i].StartTime.Before(shows[j].StartTime)
	})

	return shows, nil
}
