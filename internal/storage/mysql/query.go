package mysql

import (
	"strings"

	"github.com/Biagem01/Orizon/internal/domain"
)

// buildTravelsWhere turns the recognized filter set into a WHERE clause and
// its bound arguments. Values are always placeholders, never interpolated.
// An empty filter set yields an empty clause.
func buildTravelsWhere(q domain.TravelsQuery) (string, []any) {
	var conds []string
	var args []any

	if q.CountryID != nil {
		conds = append(conds, "t.country_id = ?")
		args = append(args, *q.CountryID)
	}
	if q.SeatsAvailable != nil {
		conds = append(conds, "t.seats_available >= ?")
		args = append(args, *q.SeatsAvailable)
	}
	if q.MinPrice != nil {
		conds = append(conds, "t.price >= ?")
		args = append(args, *q.MinPrice)
	}
	if q.MaxPrice != nil {
		conds = append(conds, "t.price <= ?")
		args = append(args, *q.MaxPrice)
	}
	if q.StartDate != nil {
		conds = append(conds, "t.start_date >= ?")
		args = append(args, *q.StartDate)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// travelsOrderBy maps a sort key to its ORDER BY clause. Unrecognized keys
// fall back to the default ordering, same as no sort at all.
func travelsOrderBy(sort string) string {
	switch sort {
	case "price_asc":
		return "ORDER BY t.price ASC"
	case "price_desc":
		return "ORDER BY t.price DESC"
	case "seats_asc":
		return "ORDER BY t.seats_available ASC"
	case "seats_desc":
		return "ORDER BY t.seats_available DESC"
	case "name":
		return "ORDER BY t.title ASC"
	default:
		return "ORDER BY t.start_date ASC, t.created_at DESC"
	}
}

// travelUpdateSet builds the SET clause for a partial update from the fixed
// field enumeration; only non-nil fields become assignments. Column names
// come from this function alone, never from request keys.
func travelUpdateSet(u domain.TravelUpdate) (string, []any) {
	var sets []string
	var args []any

	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if u.CountryID != nil {
		set("country_id", *u.CountryID)
	}
	if u.SeatsAvailable != nil {
		set("seats_available", *u.SeatsAvailable)
	}
	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.Description != nil {
		set("description", *u.Description)
	}
	if u.Price != nil {
		set("price", *u.Price)
	}
	if u.StartDate != nil {
		set("start_date", *u.StartDate)
	}
	if u.EndDate != nil {
		set("end_date", *u.EndDate)
	}

	if len(sets) == 0 {
		return "", nil
	}
	return "SET " + strings.Join(sets, ", "), args
}
