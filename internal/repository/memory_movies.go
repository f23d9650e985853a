package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MemoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[string]*domain.Movie
}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{
		movies: make(map[string]*domain.Movie),
	}
}

func (m *MemoryMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if strings.TrimSpace(movie.ID) == "" || strings.TrimSpace(movie.Title) == "" {
		return fmt.Errorf("%w: movie id and title are required", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.movies[movie.ID]; ok {
		return fmt.Errorf("%w: movie %s", domain.ErrDuplicateRecord, movie.ID)
	}

	m.movies[movie.ID] = movie

	return nil
}

func (m *MemoryMovieRepository) GetById(ctx context.Context, id string) (*domain.Movie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	movie, ok := m.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return movie, nil
}

// Search returns movies whose title contains term, case-insensitively,
// sorted by title. An empty term matches everything.
func (m *MemoryMovieRepository) Search(ctx context.Context, term string) ([]*domain.Movie, error) {
	term = strings.ToLower(strings.TrimSpace(term))

	m.mu.RLock()
	defer m.mu.RUnlock()

	movies := []*domain.Movie{}

	for _, movie := range m.movies {
		if term == "" || strings.Contains(strings.ToLower(movie.Title), term) {
			movies = append(movies, movie)
		}
	}

	sort.Slice(movies, func(i, j int) bool {
		return movies[i].Title < movies[j].Title
	})

	return movies, nil
}
