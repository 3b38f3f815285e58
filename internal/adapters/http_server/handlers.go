package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Biagem01/Orizon/internal/domain"
)

// CountryOps and TravelOps are the resource operations the dispatcher
// routes to; the app services implement them.
type CountryOps interface {
	List(ctx context.Context) ([]domain.Country, error)
	Get(ctx context.Context, id int64) (domain.CountryDetail, error)
	Create(ctx context.Context, body map[string]any) (domain.Country, error)
	Update(ctx context.Context, id int64, body map[string]any) (domain.Country, error)
	Delete(ctx context.Context, id int64) error
}

type TravelOps interface {
	List(ctx context.Context, q domain.TravelsQuery) (domain.TravelsPage, error)
	Get(ctx context.Context, id int64) (domain.Travel, error)
	Create(ctx context.Context, body map[string]any) (domain.Travel, error)
	Update(ctx context.Context, id int64, body map[string]any) (domain.Travel, error)
	Delete(ctx context.Context, id int64) error
}

type Handlers struct {
	Countries CountryOps
	Travels   TravelOps
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api", http.StatusTemporaryRedirect)
	})
	s.mux.Get("/api", apiInfo)

	// Dispatch is by path prefix: anything under /countries or /travels goes
	// to the resource handler, which reads the ?id= parameter itself. The
	// wildcard keeps subpath requests on the handler instead of the 404.
	s.mux.Route("/countries", func(r chi.Router) {
		for _, pattern := range []string{"/", "/*"} {
			r.Get(pattern, h.getCountries)
			r.Post(pattern, h.createCountry)
			r.Put(pattern, h.updateCountry)
			r.Delete(pattern, h.deleteCountry)
		}
	})
	s.mux.Route("/travels", func(r chi.Router) {
		for _, pattern := range []string{"/", "/*"} {
			r.Get(pattern, h.getTravels)
			r.Post(pattern, h.createTravel)
			r.Put(pattern, h.updateTravel)
			r.Delete(pattern, h.deleteTravel)
		}
	})

	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{
			"error":   "Endpoint not found",
			"message": "The requested endpoint does not exist",
			"path":    r.URL.Path,
		})
	})
	s.mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "Method not allowed")
	})
}

func apiInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"name":        "Orizon Travel Agency API",
		"version":     "1.0.0",
		"description": "RESTful API for managing countries and travels",
		"endpoints": map[string]string{
			"GET /countries":         "Get all countries",
			"GET /countries?id=N":    "Get specific country",
			"POST /countries":        "Create new country",
			"PUT /countries?id=N":    "Update country",
			"DELETE /countries?id=N": "Delete country",
			"GET /travels":           "Get all travels (supports filtering and sorting)",
			"GET /travels?id=N":      "Get specific travel",
			"POST /travels":          "Create new travel",
			"PUT /travels?id=N":      "Update travel",
			"DELETE /travels?id=N":   "Delete travel",
		},
	})
}

// queryID reads the resource identifier from the ?id= query parameter.
// A non-numeric or absent value means "no ID" (inherited contract: the ID
// rides in the query string, not the path).
func queryID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// decodeBody parses the JSON request body. A body that is not a JSON object
// with at least one key is rejected up front.
func decodeBody(r *http.Request) (map[string]any, bool) {
	var m map[string]any
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil || len(m) == 0 {
		return nil, false
	}
	return m, true
}

// ---------------------------------------------------------------------------
// Countries
// ---------------------------------------------------------------------------

func (h *Handlers) getCountries(w http.ResponseWriter, r *http.Request) {
	if id, ok := queryID(r); ok {
		c, err := h.Countries.Get(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, envelope{"data": c})
		return
	}

	list, err := h.Countries.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"data": list, "count": len(list)})
}

func (h *Handlers) createCountry(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON data provided")
		return
	}
	c, err := h.Countries.Create(r.Context(), body)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"message": "Country created successfully", "data": c})
}

func (h *Handlers) updateCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Country ID is required for update operation")
		return
	}
	body, ok := decodeBody(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON data provided")
		return
	}
	c, err := h.Countries.Update(r.Context(), id, body)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Country updated successfully", "data": c})
}

func (h *Handlers) deleteCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Country ID is required for delete operation")
		return
	}
	if err := h.Countries.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Travels
// ---------------------------------------------------------------------------

func (h *Handlers) getTravels(w http.ResponseWriter, r *http.Request) {
	if id, ok := queryID(r); ok {
		t, err := h.Travels.Get(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, envelope{"data": t})
		return
	}

	q := parseTravelsQuery(r.URL.Query())
	page, err := h.Travels.List(r.Context(), q)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"data":    page.Items,
		"count":   len(page.Items),
		"total":   page.Total,
		"filters": q.Filters(),
	})
}

func (h *Handlers) createTravel(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON data provided")
		return
	}
	t, err := h.Travels.Create(r.Context(), body)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"message": "Travel created successfully", "data": t})
}

func (h *Handlers) updateTravel(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Travel ID is required for update operation")
		return
	}
	body, ok := decodeBody(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Invalid JSON data provided")
		return
	}
	t, err := h.Travels.Update(r.Context(), id, body)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Travel updated successfully", "data": t})
}

func (h *Handlers) deleteTravel(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Bad Request", "Travel ID is required for delete operation")
		return
	}
	if err := h.Travels.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	// 204 without a body for both resources; the historical travel delete
	// answered 204 with a JSON payload, which most clients drop anyway.
	w.WriteHeader(http.StatusNoContent)
}

// parseTravelsQuery extracts the recognized filter set. Non-numeric or empty
// values are dropped silently: listing stays lenient rather than strict.
// Fractional values for the integer filters are dropped too, not truncated.
func parseTravelsQuery(vals url.Values) domain.TravelsQuery {
	var q domain.TravelsQuery

	if raw := vals.Get("country_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.CountryID = &id
		}
	}
	if raw := vals.Get("seats_available"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			q.SeatsAvailable = &n
		}
	}
	if raw := vals.Get("min_price"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MinPrice = &f
		}
	}
	if raw := vals.Get("max_price"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			q.MaxPrice = &f
		}
	}
	if raw := vals.Get("start_date"); raw != "" {
		q.StartDate = &raw
	}
	switch sort := vals.Get("sort"); sort {
	case "price_asc", "price_desc", "seats_asc", "seats_desc", "name":
		q.Sort = sort
	}
	return q
}
