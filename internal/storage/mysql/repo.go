package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/Biagem01/Orizon/internal/adapters/observability"
	"github.com/Biagem01/Orizon/internal/domain"
)

const dateLayout = "2006-01-02"

// erDupEntry is MySQL error 1062 (duplicate entry for a unique key). The
// unique index on countries.name is the real source of truth for name
// uniqueness; the service-level pre-check only exists to fail fast.
const erDupEntry = 1062

func isDupEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == erDupEntry
}

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullToStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullToF64(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nullToDate renders a scanned DATE column back to its wire format.
func nullToDate(v sql.NullTime) *string {
	if !v.Valid {
		return nil
	}
	s := v.Time.Format(dateLayout)
	return &s
}

type Repo struct{ db *sql.DB }

// New wraps the shared *sql.DB pool; each call draws a connection from the
// pool for its own lifetime and carries the request context.
func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---------------------------------------------------------------------------
// Countries
// ---------------------------------------------------------------------------

func (r *Repo) ListCountries(ctx context.Context) ([]domain.Country, error) {
	defer observability.TimeDB("countries.list")()

	rows, err := r.db.QueryContext(ctx, listCountriesSQL)
	if err != nil {
		return nil, domain.Storef(err, "Failed to retrieve countries")
	}
	defer rows.Close()

	out := []domain.Country{}
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.TravelCount); err != nil {
			return nil, domain.Storef(err, "Failed to retrieve countries")
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storef(err, "Failed to retrieve countries")
	}
	return out, nil
}

func (r *Repo) GetCountry(ctx context.Context, id int64) (domain.CountryDetail, error) {
	defer observability.TimeDB("countries.get")()

	var d domain.CountryDetail
	err := r.db.QueryRowContext(ctx, getCountrySQL, id).Scan(&d.ID, &d.Name, &d.TravelCount)
	if err == sql.ErrNoRows {
		return domain.CountryDetail{}, domain.NotFoundf("Country not found")
	}
	if err != nil {
		return domain.CountryDetail{}, domain.Storef(err, "Failed to retrieve country")
	}

	rows, err := r.db.QueryContext(ctx, listCountryTravelsSQL, id)
	if err != nil {
		return domain.CountryDetail{}, domain.Storef(err, "Failed to retrieve country")
	}
	defer rows.Close()

	d.Travels = []domain.CountryTravel{}
	for rows.Next() {
		var t domain.CountryTravel
		var price sql.NullFloat64
		var start, end sql.NullTime
		if err := rows.Scan(&t.ID, &t.Title, &t.SeatsAvailable, &price, &start, &end); err != nil {
			return domain.CountryDetail{}, domain.Storef(err, "Failed to retrieve country")
		}
		t.Price = nullToF64(price)
		t.StartDate = nullToDate(start)
		t.EndDate = nullToDate(end)
		d.Travels = append(d.Travels, t)
	}
	if err := rows.Err(); err != nil {
		return domain.CountryDetail{}, domain.Storef(err, "Failed to retrieve country")
	}
	return d, nil
}

func (r *Repo) CountryExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, countryExistsSQL, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, domain.Storef(err, "Failed to retrieve country")
	}
	return true, nil
}

func (r *Repo) CountryNameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, countryNameTakenSQL, name, excludeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, domain.Storef(err, "Failed to retrieve country")
	}
	return true, nil
}

func (r *Repo) CountCountryTravels(ctx context.Context, countryID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countCountryTravelsSQL, countryID).Scan(&n); err != nil {
		return 0, domain.Storef(err, "Failed to retrieve country")
	}
	return n, nil
}

func (r *Repo) CreateCountry(ctx context.Context, name string) (domain.Country, error) {
	defer observability.TimeDB("countries.create")()

	res, err := r.db.ExecContext(ctx, insertCountrySQL, name)
	if err != nil {
		if isDupEntry(err) {
			return domain.Country{}, domain.Conflictf("Country name must be unique")
		}
		return domain.Country{}, domain.Storef(err, "Failed to create country")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Country{}, domain.Storef(err, "Failed to create country")
	}
	return r.countryRow(ctx, id, "Failed to create country")
}

func (r *Repo) RenameCountry(ctx context.Context, id int64, name string) (domain.Country, error) {
	defer observability.TimeDB("countries.update")()

	if _, err := r.db.ExecContext(ctx, updateCountrySQL, name, id); err != nil {
		if isDupEntry(err) {
			return domain.Country{}, domain.Conflictf("Country name must be unique")
		}
		return domain.Country{}, domain.Storef(err, "Failed to update country")
	}
	return r.countryRow(ctx, id, "Failed to update country")
}

func (r *Repo) DeleteCountry(ctx context.Context, id int64) error {
	defer observability.TimeDB("countries.delete")()

	if _, err := r.db.ExecContext(ctx, deleteCountrySQL, id); err != nil {
		return domain.Storef(err, "Failed to delete country")
	}
	return nil
}

// countryRow re-reads a single country after a write through the same
// aggregate join the read paths use, so travel_count is real on rename,
// not a zero value.
func (r *Repo) countryRow(ctx context.Context, id int64, failMsg string) (domain.Country, error) {
	var c domain.Country
	err := r.db.QueryRowContext(ctx, getCountrySQL, id).Scan(&c.ID, &c.Name, &c.TravelCount)
	if err != nil {
		return domain.Country{}, domain.Storef(err, failMsg)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Travels
// ---------------------------------------------------------------------------

func (r *Repo) ListTravels(ctx context.Context, q domain.TravelsQuery) (domain.TravelsPage, error) {
	defer observability.TimeDB("travels.list")()

	where, args := buildTravelsWhere(q)
	query := selectTravelsSQL + where + "\n" + travelsOrderBy(q.Sort)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.TravelsPage{}, domain.Storef(err, "Failed to retrieve travels")
	}
	defer rows.Close()

	items := []domain.Travel{}
	for rows.Next() {
		t, err := scanTravel(rows)
		if err != nil {
			return domain.TravelsPage{}, domain.Storef(err, "Failed to retrieve travels")
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return domain.TravelsPage{}, domain.Storef(err, "Failed to retrieve travels")
	}

	// Total for the same filter set; redundant with len(items) while no
	// pagination limit exists, kept as envelope metadata.
	var total int64
	if err := r.db.QueryRowContext(ctx, countTravelsSQL+where, args...).Scan(&total); err != nil {
		return domain.TravelsPage{}, domain.Storef(err, "Failed to retrieve travels")
	}
	return domain.TravelsPage{Items: items, Total: total}, nil
}

func (r *Repo) GetTravel(ctx context.Context, id int64) (domain.Travel, error) {
	defer observability.TimeDB("travels.get")()

	row := r.db.QueryRowContext(ctx, getTravelSQL, id)
	t, err := scanTravel(row)
	if err == sql.ErrNoRows {
		return domain.Travel{}, domain.NotFoundf("Travel not found")
	}
	if err != nil {
		return domain.Travel{}, domain.Storef(err, "Failed to retrieve travel")
	}
	return t, nil
}

func (r *Repo) CreateTravel(ctx context.Context, in domain.TravelInput) (domain.Travel, error) {
	defer observability.TimeDB("travels.create")()

	res, err := r.db.ExecContext(ctx, insertTravelSQL,
		in.CountryID,
		in.SeatsAvailable,
		in.Title,
		valStr(in.Description),
		valF64(in.Price),
		valStr(in.StartDate),
		valStr(in.EndDate),
	)
	if err != nil {
		return domain.Travel{}, domain.Storef(err, "Failed to create travel")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Travel{}, domain.Storef(err, "Failed to create travel")
	}

	return r.GetTravel(ctx, id)
}

func (r *Repo) UpdateTravel(ctx context.Context, id int64, u domain.TravelUpdate) (domain.Travel, error) {
	defer observability.TimeDB("travels.update")()

	set, args := travelUpdateSet(u)
	if set == "" {
		return domain.Travel{}, domain.Validationf("No valid fields provided for update")
	}
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, "UPDATE travels "+set+" WHERE id = ?", args...); err != nil {
		return domain.Travel{}, domain.Storef(err, "Failed to update travel")
	}

	return r.GetTravel(ctx, id)
}

func (r *Repo) DeleteTravel(ctx context.Context, id int64) error {
	defer observability.TimeDB("travels.delete")()

	if _, err := r.db.ExecContext(ctx, deleteTravelSQL, id); err != nil {
		return domain.Storef(err, "Failed to delete travel")
	}
	return nil
}

// scanTravel reads the shared travel SELECT column list from either a *Row
// or *Rows.
func scanTravel(row interface{ Scan(...any) error }) (domain.Travel, error) {
	var t domain.Travel
	var desc sql.NullString
	var price sql.NullFloat64
	var start, end sql.NullTime
	var created time.Time

	if err := row.Scan(
		&t.ID,
		&t.CountryID,
		&t.CountryName,
		&t.Title,
		&desc,
		&price,
		&t.SeatsAvailable,
		&start,
		&end,
		&created,
	); err != nil {
		return domain.Travel{}, err
	}

	t.Description = nullToStr(desc)
	t.Price = nullToF64(price)
	t.StartDate = nullToDate(start)
	t.EndDate = nullToDate(end)
	t.CreatedAt = created
	return t, nil
}
