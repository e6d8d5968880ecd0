package memory

import (
	"context"

	"isocity/internal/app/ports"
	"isocity/internal/domain/city"
)

type CityRepo struct {
	store *Store
}

func NewCityRepo(store *Store) CityRepo {
	return CityRepo{store: store}
}

func (r CityRepo) Current(context.Context) (*city.City, error) {
	if r.store.city == nil {
		return nil, ports.ErrNotFound
	}
	return r.store.city, nil
}
