package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID       string
	Title    string
	Genre    string
	Duration int
	Rating   decimal.Decimal
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetById(ctx context.Context, id string) (*Movie, error)
	Search(ctx context.Context, term string) ([]*Movie, error)
}
