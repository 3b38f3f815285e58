package app

import (
	"context"

	"github.com/Biagem01/Orizon/internal/domain"
	"github.com/Biagem01/Orizon/internal/validate"
)

// travelFields is the fixed enumeration of updatable fields. Request keys
// outside this list are ignored; the repo maps each field to its column
// explicitly.
var travelFields = []string{
	"country_id", "seats_available", "title", "description", "price", "start_date", "end_date",
}

type TravelService struct {
	travels   domain.TravelRepository
	countries domain.CountryRepository
}

func NewTravelService(t domain.TravelRepository, c domain.CountryRepository) *TravelService {
	return &TravelService{travels: t, countries: c}
}

// List applies the recognized filter set and sort, joining country names.
func (s *TravelService) List(ctx context.Context, q domain.TravelsQuery) (domain.TravelsPage, error) {
	return s.travels.ListTravels(ctx, q)
}

func (s *TravelService) Get(ctx context.Context, id int64) (domain.Travel, error) {
	return s.travels.GetTravel(ctx, id)
}

// Create validates required fields, checks the referenced country exists,
// enforces the non-negativity and date-ordering rules, and inserts.
func (s *TravelService) Create(ctx context.Context, body map[string]any) (domain.Travel, error) {
	data, err := validate.Fields(body,
		[]string{"country_id", "seats_available", "title"},
		map[string]any{"description": nil, "price": nil, "start_date": nil, "end_date": nil},
	)
	if err != nil {
		return domain.Travel{}, err
	}

	var in domain.TravelInput

	countryID, ok := asInt64(data["country_id"])
	if !ok {
		return domain.Travel{}, domain.Validationf("Field 'country_id' must be a number")
	}
	if err := s.countryMustExist(ctx, countryID); err != nil {
		return domain.Travel{}, err
	}
	in.CountryID = countryID

	seats, ok := asInt(data["seats_available"])
	if !ok || seats < 0 {
		return domain.Travel{}, domain.Validationf("Seats available must be a non-negative number")
	}
	in.SeatsAvailable = seats

	title, ok := asString(data["title"])
	if !ok {
		return domain.Travel{}, domain.Validationf("Field 'title' must be a string")
	}
	in.Title = title

	if v := data["description"]; v != nil {
		desc, ok := asString(v)
		if !ok {
			return domain.Travel{}, domain.Validationf("Field 'description' must be a string")
		}
		in.Description = &desc
	}
	if v := data["price"]; v != nil {
		price, ok := asFloat(v)
		if !ok || price < 0 {
			return domain.Travel{}, domain.Validationf("Price must be a non-negative number")
		}
		in.Price = &price
	}
	if v := data["start_date"]; v != nil {
		d, ok := asDate(v)
		if !ok {
			return domain.Travel{}, domain.Validationf("Field 'start_date' must be a date in YYYY-MM-DD format")
		}
		in.StartDate = &d
	}
	if v := data["end_date"]; v != nil {
		d, ok := asDate(v)
		if !ok {
			return domain.Travel{}, domain.Validationf("Field 'end_date' must be a date in YYYY-MM-DD format")
		}
		in.EndDate = &d
	}
	if in.StartDate != nil && in.EndDate != nil && *in.StartDate >= *in.EndDate {
		return domain.Travel{}, domain.Validationf("End date must be after start date")
	}

	return s.travels.CreateTravel(ctx, in)
}

// Update applies a partial update: only fields present in the body change,
// and only those are re-validated. A body with no recognized field is an
// error, not a no-op.
func (s *TravelService) Update(ctx context.Context, id int64, body map[string]any) (domain.Travel, error) {
	if _, err := s.travels.GetTravel(ctx, id); err != nil {
		return domain.Travel{}, err
	}

	u, err := s.buildUpdate(ctx, body)
	if err != nil {
		return domain.Travel{}, err
	}
	if u.Empty() {
		return domain.Travel{}, domain.Validationf("No valid fields provided for update")
	}

	return s.travels.UpdateTravel(ctx, id, u)
}

func (s *TravelService) buildUpdate(ctx context.Context, body map[string]any) (domain.TravelUpdate, error) {
	var u domain.TravelUpdate

	for _, field := range travelFields {
		v, present := body[field]
		if !present || v == nil {
			continue
		}
		switch field {
		case "country_id":
			countryID, ok := asInt64(v)
			if !ok {
				return u, domain.Validationf("Field 'country_id' must be a number")
			}
			if err := s.countryMustExist(ctx, countryID); err != nil {
				return u, err
			}
			u.CountryID = &countryID
		case "seats_available":
			seats, ok := asInt(v)
			if !ok || seats < 0 {
				return u, domain.Validationf("Seats available must be a non-negative number")
			}
			u.SeatsAvailable = &seats
		case "title":
			title, ok := asString(v)
			if !ok {
				return u, domain.Validationf("Field 'title' must be a string")
			}
			u.Title = &title
		case "description":
			desc, ok := asString(v)
			if !ok {
				return u, domain.Validationf("Field 'description' must be a string")
			}
			u.Description = &desc
		case "price":
			price, ok := asFloat(v)
			if !ok || price < 0 {
				return u, domain.Validationf("Price must be a non-negative number")
			}
			u.Price = &price
		case "start_date":
			d, ok := asDate(v)
			if !ok {
				return u, domain.Validationf("Field 'start_date' must be a date in YYYY-MM-DD format")
			}
			u.StartDate = &d
		case "end_date":
			d, ok := asDate(v)
			if !ok {
				return u, domain.Validationf("Field 'end_date' must be a date in YYYY-MM-DD format")
			}
			u.EndDate = &d
		}
	}

	return u, nil
}

// Delete removes a travel. No referential check exists in this direction.
func (s *TravelService) Delete(ctx context.Context, id int64) error {
	if _, err := s.travels.GetTravel(ctx, id); err != nil {
		return err
	}
	return s.travels.DeleteTravel(ctx, id)
}

func (s *TravelService) countryMustExist(ctx context.Context, id int64) error {
	ok, err := s.countries.CountryExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("Country not found")
	}
	return nil
}
