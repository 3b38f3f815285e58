package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Biagem01/Orizon/internal/app"
	"github.com/Biagem01/Orizon/internal/domain"
)

// ---- fakes ----

type fakeCountryRepo struct {
	countries    map[int64]string // id -> name
	travelCounts map[int64]int64
	nextID       int64
	dupOnInsert  bool // simulate a racing insert hitting the unique index
	deleted      []int64
}

func newFakeCountryRepo() *fakeCountryRepo {
	return &fakeCountryRepo{countries: map[int64]string{}, travelCounts: map[int64]int64{}, nextID: 1}
}

func (f *fakeCountryRepo) ListCountries(ctx context.Context) ([]domain.Country, error) {
	out := []domain.Country{}
	for id, name := range f.countries {
		out = append(out, domain.Country{ID: id, Name: name, TravelCount: f.travelCounts[id]})
	}
	return out, nil
}

func (f *fakeCountryRepo) GetCountry(ctx context.Context, id int64) (domain.CountryDetail, error) {
	name, ok := f.countries[id]
	if !ok {
		return domain.CountryDetail{}, domain.NotFoundf("Country not found")
	}
	return domain.CountryDetail{
		Country: domain.Country{ID: id, Name: name, TravelCount: f.travelCounts[id]},
		Travels: []domain.CountryTravel{},
	}, nil
}

func (f *fakeCountryRepo) CountryExists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.countries[id]
	return ok, nil
}

func (f *fakeCountryRepo) CountryNameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	for id, n := range f.countries {
		if n == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCountryRepo) CountCountryTravels(ctx context.Context, id int64) (int64, error) {
	return f.travelCounts[id], nil
}

func (f *fakeCountryRepo) CreateCountry(ctx context.Context, name string) (domain.Country, error) {
	if f.dupOnInsert {
		return domain.Country{}, domain.Conflictf("Country name must be unique")
	}
	id := f.nextID
	f.nextID++
	f.countries[id] = name
	return domain.Country{ID: id, Name: name}, nil
}

func (f *fakeCountryRepo) RenameCountry(ctx context.Context, id int64, name string) (domain.Country, error) {
	f.countries[id] = name
	return domain.Country{ID: id, Name: name}, nil
}

func (f *fakeCountryRepo) DeleteCountry(ctx context.Context, id int64) error {
	delete(f.countries, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// ---- tests ----

func TestCountryCreate_ThenGet(t *testing.T) {
	repo := newFakeCountryRepo()
	svc := app.NewCountryService(repo)

	c, err := svc.Create(context.Background(), map[string]any{"name": "  Italy "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Name != "Italy" {
		t.Fatalf("expected trimmed name Italy, got %q", c.Name)
	}

	got, err := svc.Get(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Italy" {
		t.Fatalf("get after create: got %q", got.Name)
	}
}

func TestCountryCreate_MissingName(t *testing.T) {
	svc := app.NewCountryService(newFakeCountryRepo())

	_, err := svc.Create(context.Background(), map[string]any{"name": "   "})
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCountryCreate_DuplicatePreCheck(t *testing.T) {
	repo := newFakeCountryRepo()
	svc := app.NewCountryService(repo)

	if _, err := svc.Create(context.Background(), map[string]any{"name": "Japan"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), map[string]any{"name": "Japan"})
	var cerr domain.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if cerr.Msg != "Country already exists" {
		t.Fatalf("unexpected message: %q", cerr.Msg)
	}
}

func TestCountryCreate_DuplicateStoreConstraint(t *testing.T) {
	// Pre-check passes (empty repo view) but the insert loses the race and
	// the store reports the unique-index violation.
	repo := newFakeCountryRepo()
	repo.dupOnInsert = true
	svc := app.NewCountryService(repo)

	_, err := svc.Create(context.Background(), map[string]any{"name": "Japan"})
	var cerr domain.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError from store fallback, got %v", err)
	}
}

func TestCountryUpdate_NotFound(t *testing.T) {
	svc := app.NewCountryService(newFakeCountryRepo())

	_, err := svc.Update(context.Background(), 99, map[string]any{"name": "Spain"})
	var nferr domain.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCountryUpdate_RenameConflict(t *testing.T) {
	repo := newFakeCountryRepo()
	repo.countries[1] = "Italy"
	repo.countries[2] = "Spain"
	svc := app.NewCountryService(repo)

	_, err := svc.Update(context.Background(), 1, map[string]any{"name": "Spain"})
	var cerr domain.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// Renaming to its own current name is not a conflict.
	c, err := svc.Update(context.Background(), 1, map[string]any{"name": "Italy"})
	if err != nil {
		t.Fatalf("self-rename: %v", err)
	}
	if c.Name != "Italy" {
		t.Fatalf("self-rename result: %q", c.Name)
	}
}

func TestCountryDelete_BlockedByTravels(t *testing.T) {
	repo := newFakeCountryRepo()
	repo.countries[1] = "Italy"
	repo.travelCounts[1] = 2
	svc := app.NewCountryService(repo)

	err := svc.Delete(context.Background(), 1)
	var cerr domain.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("delete must not reach the store when blocked")
	}
}

func TestCountryDelete_OK(t *testing.T) {
	repo := newFakeCountryRepo()
	repo.countries[1] = "Italy"
	svc := app.NewCountryService(repo)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
		t.Fatalf("expected id 1 deleted, got %v", repo.deleted)
	}
}
