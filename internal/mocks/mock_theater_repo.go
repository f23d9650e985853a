package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MockTheaterRepo struct {
	mock.Mock
	domain.TheaterRepository
}

func (m *MockTheaterRepo) Create(ctx context.Context, theater *domain.Theater) error {
	args := m.Called(ctx, theater)
	return args.Error(0)
}

func (m *MockTheaterRepo) GetById(ctx context.Context, id string) (*domain.Theater, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theater), args.Error(1)
}

func (m *MockTheaterRepo) GetAll(ctx context.Context) ([]*domain.Theater, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Theater), args.Error(1)
}

type MockScreenRepo struct {
	mock.Mock
	domain.ScreenRepository
}

func (m *MockScreenRepo) Create(ctx context.Context, screen *domain.Screen) error {
	args := m.Called(ctx, screen)
	return args.Error(0)
}

func (m *MockScreenRepo) GetById(ctx context.Context, id string) (*domain.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Screen), args.Error(1)
}

func (m *MockScreenRepo) GetByTheater(ctx context.Context, theaterID string) ([]*domain.Screen, error) {
	args := m.Called(ctx, theaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Screen), args.Error(1)
}
