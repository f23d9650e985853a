package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

// MemoryBookingLedger stores booking records and hands out sequential
// booking identifiers. The counter is global across all shows and never
// reuses a retired id, so cancelled bookings leave gaps.
type MemoryBookingLedger struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	seq      atomic.Uint64
}

func NewMemoryBookingLedger() *MemoryBookingLedger {
	return &MemoryBookingLedger{
		bookings: make(map[string]*domain.Booking),
	}
}

func (m *MemoryBookingLedger) NextBookingID() string {
	return fmt.Sprintf("B%03d", m.seq.Add(1))
}

func (m *MemoryBookingLedger) Record(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == "" || len(booking.Seats) == 0 {
		return fmt.Errorf("%w: booking needs an id and at least one seat", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bookings[booking.ID]; ok {
		return fmt.Errorf("%w: booking %s", domain.ErrDuplicateRecord, booking.ID)
	}

	m.bookings[booking.ID] = booking

	return nil
}

func (m *MemoryBookingLedger) GetById(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	booking, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return booking, nil
}

func (m *MemoryBookingLedger) GetByShow(ctx context.Context, showID string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bookings := []*domain.Booking{}

	for _, booking := range m.bookings {
		if booking.ShowID == showID {
			bookings = append(bookings, booking)
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID < bookings[j].ID
	})

	return bookings, nil
}

func (m *MemoryBookingLedger) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bookings[id]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(m.bookings, id)

	return nil
}
