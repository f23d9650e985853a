package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MemoryTheaterRepository struct {
	mu       sync.RWMutex
	theaters map[string]*domain.Theater
}

func NewMemoryTheaterRepository() *MemoryTheaterRepository {
	return &MemoryTheaterRepository{
		theaters: make(map[string]*domain.Theater),
	}
}

func (m *MemoryTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	if strings.TrimSpace(theater.ID) == "" || strings.TrimSpace(theater.Name) == "" {
		return fmt.Errorf("%w: theater id and name are required", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.theaters[theater.ID]; ok {
		return fmt.Errorf("%w: theater %s", domain.ErrDuplicateRecord, theater.ID)
	}

	m.theaters[theater.ID] = theater

	return nil
}

func (m *MemoryTheaterRepository) GetById(ctx context.Context, id string) (*domain.Theater, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	theater, ok := m.theaters[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return theater, nil
}

func (m *MemoryTheaterRepository) GetAll(ctx context.Context) ([]*domain.Theater, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	theaters := make([]*domain.Theater, 0, len(m.theaters))
	for _, theater := range m.theaters {
		theaters = append(theaters, theater)
	}

	sort.Slice(theaters, func(i, j int) bool {
		return theaters[i].Name < theaters[j].Name
	})

	return theaters, nil
}
