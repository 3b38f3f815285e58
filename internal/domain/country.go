package domain

// Country is a destination travels can be attached to.
// TravelCount is an aggregate computed on read, never stored.
type Country struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	TravelCount int64  `json:"travel_count"`
}

// CountryDetail is the single-country read model: the country row plus
// the ordered list of its travels.
type CountryDetail struct {
	Country
	Travels []CountryTravel `json:"travels"`
}

// CountryTravel is the abbreviated travel row embedded in CountryDetail,
// ordered by start_date ascending.
type CountryTravel struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	SeatsAvailable int      `json:"seats_available"`
	Price          *float64 `json:"price"`
	StartDate      *string  `json:"start_date"`
	EndDate        *string  `json:"end_date"`
}
