package domain

import (
	"strconv"
	"time"
)

// Travel is a bookable trip to a country. Dates travel over the wire as
// YYYY-MM-DD strings; CountryName is joined from countries on every read.
type Travel struct {
	ID             int64     `json:"id"`
	CountryID      int64     `json:"country_id"`
	CountryName    string    `json:"country_name"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	SeatsAvailable int       `json:"seats_available"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// TravelInput carries a fully validated create payload.
type TravelInput struct {
	CountryID      int64
	Title          string
	Description    *string
	Price          *float64
	SeatsAvailable int
	StartDate      *string
	EndDate        *string
}

// TravelUpdate is a partial update: nil means "leave the column alone".
// The repo maps each field to its column explicitly; input keys are never
// used as column names.
type TravelUpdate struct {
	CountryID      *int64
	Title          *string
	Description    *string
	Price          *float64
	SeatsAvailable *int
	StartDate      *string
	EndDate        *string
}

// Empty reports whether the update would touch no columns.
func (u TravelUpdate) Empty() bool {
	return u.CountryID == nil && u.Title == nil && u.Description == nil &&
		u.Price == nil && u.SeatsAvailable == nil && u.StartDate == nil && u.EndDate == nil
}

// TravelsQuery is the recognized filter set for travel listings.
// Nil fields are "not filtered"; every predicate is ANDed.
type TravelsQuery struct {
	CountryID      *int64   // exact match
	SeatsAvailable *int     // at least
	MinPrice       *float64 // price >=
	MaxPrice       *float64 // price <=
	StartDate      *string  // start_date >=
	Sort           string   // price_asc|price_desc|seats_asc|seats_desc|name, else default
}

// Filters echoes the applied filter set for the list envelope. Only
// recognized keys that actually carry a value appear.
func (q TravelsQuery) Filters() map[string]string {
	f := map[string]string{}
	if q.CountryID != nil {
		f["country_id"] = itoa64(*q.CountryID)
	}
	if q.SeatsAvailable != nil {
		f["seats_available"] = itoa(*q.SeatsAvailable)
	}
	if q.MinPrice != nil {
		f["min_price"] = ftoa(*q.MinPrice)
	}
	if q.MaxPrice != nil {
		f["max_price"] = ftoa(*q.MaxPrice)
	}
	if q.StartDate != nil {
		f["start_date"] = *q.StartDate
	}
	if q.Sort != "" {
		f["sort"] = q.Sort
	}
	return f
}

func itoa(n int) string     { return strconv.Itoa(n) }
func itoa64(n int64) string { return strconv.FormatInt(n, 10) }
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// TravelsPage is a filtered listing plus its count metadata. Total matches
// Count today (no pagination limit is applied); kept as separate metadata
// for compatibility with the original API shape.
type TravelsPage struct {
	Items []Travel
	Total int64
}
