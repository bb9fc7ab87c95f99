package service

import (
	"context"
	"errors"

	"github.com/ridewise/cabbook/internal/booking/domain"
	"github.com/ridewise/cabbook/internal/booking/store"
	"github.com/ridewise/cabbook/pkg/idx"
)

// ErrDuplicateCity reports a create against a taken city name.
var ErrDuplicateCity = errors.New("city already exists")

type CityService struct {
	Store store.Store
}

// ListCities returns every city ordered by name.
func (s *CityService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.Store.Cities().ListCities(ctx)
}

// CreateCity adds a new serviceable city.
func (s *CityService) CreateCity(ctx context.Context, name string, available bool) (domain.City, error) {
	c := domain.City{
		ID:        idx.New().String(),
		Name:      name,
		Available: available,
	}
	if err := s.Store.Cities().CreateCity(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.City{}, ErrDuplicateCity
		}
		return domain.City{}, err
	}
	return s.Store.Cities().GetCityByID(ctx, c.ID)
}

// UpdateCity applies a partial update: nil fields are left unchanged.
// Returns store.ErrNotFound when the city does not exist.
func (s *CityService) UpdateCity(ctx context.Context, id string, name *string, available *bool) (domain.City, error) {
	c, err := s.Store.Cities().GetCityByID(ctx, id)
	if err != nil {
		return domain.City{}, err
	}

	if name != nil {
		c.Name = *name
	}
	if available != nil {
		c.Available = *available
	}

	if err := s.Store.Cities().UpdateCity(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.City{}, ErrDuplicateCity
		}
		return domain.City{}, err
	}
	return s.Store.Cities().GetCityByID(ctx, id)
}

// DeleteCity removes a city. Returns store.ErrNotFound when absent.
func (s *CityService) DeleteCity(ctx context.Context, id string) error {
	return s.Store.Cities().DeleteCity(ctx, id)
}
