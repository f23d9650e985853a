package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

func seedMovies(t *testing.T, repo *MemoryMovieRepository, titles ...string) {
	t.Helper()

	for i, title := range titles {
		err := repo.Create(context.Background(), &domain.Movie{
			ID:    string(rune('a' + i)),
			Title: title,
		})
		require.NoError(t, err)
	}
}

func TestMovieRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()

	require.NoError(t, repo.Create(ctx, &domain.Movie{ID: "m1", Title: "Dune"}))

	err := repo.Create(ctx, &domain.Movie{ID: "m1", Title: "Dune Again"})
	assert.ErrorIs(t, err, domain.ErrDuplicateRecord)

	err = repo.Create(ctx, &domain.Movie{ID: "", Title: "No ID"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = repo.Create(ctx, &domain.Movie{ID: "m2", Title: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovieRepositoryGetById(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()
	seedMovies(t, repo, "Dune")

	movie, err := repo.GetById(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Dune", movie.Title)

	_, err = repo.GetById(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestMovieRepositorySearch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMovieRepository()
	seedMovies(t, repo, "The Matrix", "Matrix Reloaded", "Inception")

	tests := []struct {
		name       string
		term       string
		wantTitles []string
	}{
		{name: "substring match is case-insensitive", term: "matrix", wantTitles: []string{"Matrix Reloaded", "The Matrix"}},
		{name: "empty term returns all sorted by title", term: "", wantTitles: []string{"Inception", "Matrix Reloaded", "The Matrix"}},
		{name: "whitespace term returns all", term: "   ", wantTitles: []string{"Inception", "Matrix Reloaded", "The Matrix"}},
		{name: "no match yields empty list", term: "zzz", wantTitles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := repo.Search(ctx, tt.term)
			require.NoError(t, err)

			titles := []string{}
			for _, movie := range movies {
				titles = append(titles, movie.Title)
			}

			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}
