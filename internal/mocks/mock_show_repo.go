package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Jopa26/MovieBookingProject/internal/domain"
)

type MockShowRepo struct {
	mock.Mock
	domain.ShowRepository
}

func (m *MockShowRepo) Create(ctx context.Context, show *domain.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepo) GetById(ctx context.Context, id string) (*domain.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Show), args.Error(1)
}

func (m *MockShowRepo) GetByMovieTitle(ctx context.Context, title string) ([]*domain.Show, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Show), args.Error(1)
}
