package domain

import "context"

type CountryRepository interface {
	// Read paths
	ListCountries(ctx context.Context) ([]Country, error)
	GetCountry(ctx context.Context, id int64) (CountryDetail, error)
	CountryExists(ctx context.Context, id int64) (bool, error)
	CountryNameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	CountCountryTravels(ctx context.Context, countryID int64) (int64, error)

	// Write paths
	CreateCountry(ctx context.Context, name string) (Country, error)
	RenameCountry(ctx context.Context, id int64, name string) (Country, error)
	DeleteCountry(ctx context.Context, id int64) error
}

type TravelRepository interface {
	// Read paths
	ListTravels(ctx context.Context, q TravelsQuery) (TravelsPage, error)
	GetTravel(ctx context.Context, id int64) (Travel, error)

	// Write paths
	CreateTravel(ctx context.Context, in TravelInput) (Travel, error)
	UpdateTravel(ctx context.Context, id int64, u TravelUpdate) (Travel, error)
	DeleteTravel(ctx context.Context, id int64) error
}
