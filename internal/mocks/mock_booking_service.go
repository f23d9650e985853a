package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MockBookingService struct {
	mock.Mock
	domain.BookingService
}

func (m *MockBookingService) BookSeats(ctx context.Context, showID string, seats []string, userName string) (*domain.Booking, error) {
	args := m.Called(ctx, showID, seats, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingService) AvailableSeats(ctx context.Context, showID string) []string {
	args := m.Called(ctx, showID)
	return args.Get(0).([]string)
}

func (m *MockBookingService) SeatStatus(ctx context.Context, showID string) (*domain.SeatMap, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeatMap), args.Error(1)
}
