package domain

import "context"

type Theater struct {
	ID       string
	Name     string
	Location string
}

type TheaterRepository interface {
	Create(ctx context.Context, theater *Theater) error
	GetById(ctx context.Context, id string) (*Theater, error)
	GetAll(ctx context.Context) ([]*Theater, error)
}
