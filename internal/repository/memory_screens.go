package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MemoryScreenRepository struct {
	mu       sync.RWMutex
	screens  map[string]*domain.Screen
	theaters domain.TheaterRepository
}

func NewMemoryScreenRepository(theaters domain.TheaterRepository) *MemoryScreenRepository {
	return &MemoryScreenRepository{
		screens:  make(map[string]*domain.Screen),
		theaters: theaters,
	}
}

func (m *MemoryScreenRepository) Create(ctx context.Context, screen *domain.Screen) error {
	if strings.TrimSpace(screen.ID) == "" {
		return fmt.Errorf("%w: screen id is required", domain.ErrInvalidInput)
	}

	if screen.Rows < 1 || screen.Rows > 26 || screen.SeatsPerRow < 1 {
		return fmt.Errorf("%w: screen %s has invalid dimensions %dx%d",
			domain.ErrInvalidInput, screen.ID, screen.Rows, screen.SeatsPerRow)
	}

	if _, err := m.theaters.GetById(ctx, screen.TheaterID); err != nil {
		return fmt.Errorf("theater %s: %w", screen.TheaterID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.screens[screen.ID]; ok {
		return fmt.Errorf("%w: screen %s", domain.ErrDuplicateRecord, screen.ID)
	}

	m.screens[screen.ID] = screen

	return nil
}

func (m *MemoryScreenRepository) GetById(ctx context.Context, id string) (*domain.Screen, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	screen, ok := m.screens[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return screen, nil
}

func (m *MemoryScreenRepository) GetByTheater(ctx context.Context, theaterID string) ([]*domain.Screen, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	screens := []*domain.Screen{}

	for _, screen := range m.screens {
		if screen.TheaterID == theaterID {
			screens = append(screens, screen)
		}
	}

	sort.Slice(screens, func(i, j int) bool {
		return screens[i].ID < screens[j].ID
	})

	return screens, nil
}
