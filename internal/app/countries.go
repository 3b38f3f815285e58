// Package app implements the resource operations for countries and travels:
// input validation, business-rule checks, and the calls against the store.
package app

import (
	"context"

	"github.com/Biagem01/Orizon/internal/domain"
	"github.com/Biagem01/Orizon/internal/validate"
)

type CountryService struct {
	repo domain.CountryRepository
}

func NewCountryService(r domain.CountryRepository) *CountryService {
	return &CountryService{repo: r}
}

// List returns every country with its travel count, ordered by name.
// An empty store is a valid, empty listing.
func (s *CountryService) List(ctx context.Context) ([]domain.Country, error) {
	return s.repo.ListCountries(ctx)
}

// Get returns one country with its travel count and its travels ordered by
// start date.
func (s *CountryService) Get(ctx context.Context, id int64) (domain.CountryDetail, error) {
	return s.repo.GetCountry(ctx, id)
}

// Create inserts a country with a unique name. The name pre-check fails
// fast; the unique index backs it up when two creates race (the repo turns
// the duplicate-entry error into the same conflict).
func (s *CountryService) Create(ctx context.Context, body map[string]any) (domain.Country, error) {
	data, err := validate.Fields(body, []string{"name"}, nil)
	if err != nil {
		return domain.Country{}, err
	}
	name, ok := asString(data["name"])
	if !ok {
		return domain.Country{}, domain.Validationf("Field 'name' must be a string")
	}

	taken, err := s.repo.CountryNameTaken(ctx, name, 0)
	if err != nil {
		return domain.Country{}, err
	}
	if taken {
		return domain.Country{}, domain.Conflictf("Country already exists")
	}

	return s.repo.CreateCountry(ctx, name)
}

// Update renames a country; the new name must not belong to any other row.
func (s *CountryService) Update(ctx context.Context, id int64, body map[string]any) (domain.Country, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return domain.Country{}, err
	}

	data, err := validate.Fields(body, []string{"name"}, nil)
	if err != nil {
		return domain.Country{}, err
	}
	name, ok := asString(data["name"])
	if !ok {
		return domain.Country{}, domain.Validationf("Field 'name' must be a string")
	}

	taken, err := s.repo.CountryNameTaken(ctx, name, id)
	if err != nil {
		return domain.Country{}, err
	}
	if taken {
		return domain.Country{}, domain.Conflictf("Country name already exists")
	}

	return s.repo.RenameCountry(ctx, id, name)
}

// Delete removes a country that has no travels attached. The referential
// check is application-level: a country with travels is a conflict, not a
// cascade.
func (s *CountryService) Delete(ctx context.Context, id int64) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.CountCountryTravels(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflictf("Cannot delete country with associated travels. Please delete or reassign travels first.")
	}

	return s.repo.DeleteCountry(ctx, id)
}

func (s *CountryService) mustExist(ctx context.Context, id int64) error {
	ok, err := s.repo.CountryExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("Country not found")
	}
	return nil
}
