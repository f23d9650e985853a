package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MockBookingLedger struct {
	mock.Mock
	domain.BookingLedger
}

func (m *MockBookingLedger) NextBookingID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockBookingLedger) Record(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingLedger) GetById(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingLedger) GetByShow(ctx context.Context, showID string) ([]*domain.Booking, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingLedger) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
