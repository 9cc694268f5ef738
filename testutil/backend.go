// Package testutil provides shared test infrastructure: an in-memory fake of
// the itinerary backend, served over a real HTTP listener so gateway tests
// exercise the full request/response path.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tripweaver/internal/domain"
)

// WeatherStub is the canned weather the fake backend returns for a location,
// serialized in the OpenWeatherMap shape the real backend proxies.
type WeatherStub struct {
	Name     string
	Country  string
	Desc     string
	Icon     string
	TempK    float64
	Humidity float64
}

// Backend is an in-memory fake of the itinerary backend. Zero value fields
// mean "succeed with defaults"; set the *Status fields to inject failures.
// All mutable state is mutex-guarded because the HTTP server runs on its own
// goroutines.
type Backend struct {
	Server *httptest.Server

	mu sync.Mutex

	// Itinerary is returned by every generation endpoint.
	Itinerary domain.Itinerary
	// GenerateStatus, when non-zero, makes generation fail with this status
	// and GenerateBody as the response body.
	GenerateStatus int
	GenerateBody   string

	// Weather maps location name → canned reading. A missing location
	// yields a 500, which is how the real backend behaves when the
	// upstream weather provider errors.
	Weather map[string]WeatherStub

	// Places is returned by the get-places endpoint; PlacesStatus injects
	// a failure.
	Places       []domain.PlaceResult
	PlacesStatus int

	// PDF is the byte blob returned by the download endpoint.
	PDF []byte

	// SaveStatus injects a save failure.
	SaveStatus int

	// lastGeneratePath records which generation variant was last hit.
	lastGeneratePath string
	// lastGeneratePayload records the decoded body of the last generation call.
	lastGeneratePayload map[string]any
	// lastPlacesQuery records the query of the last get-places call.
	lastPlacesQuery url.Values

	// saved holds persisted records per email, in insertion order.
	saved map[string][]savedRecord
}

type savedRecord struct {
	ID        string           `json:"id"`
	CreatedAt string           `json:"created_at"`
	Itinerary domain.Itinerary `json:"itinerary_data"`
}

// NewBackend starts a fake backend and registers its shutdown with t.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		Weather: map[string]WeatherStub{},
		PDF:     []byte("%PDF-1.4 fake"),
		saved:   map[string][]savedRecord{},
	}

	r := chi.NewRouter()
	r.Post("/generate-itinerary", b.handleGenerate)
	r.Post("/generate-itinerary-with-destination", b.handleGenerate)
	r.Post("/generate-itinerary-with-requests", b.handleGenerate)
	r.Post("/generate-itinerary-with-destination-and-requests", b.handleGenerate)
	r.Get("/get-places", b.handlePlaces)
	r.Get("/get-weather", b.handleWeather)
	r.Get("/get-destination-weather", b.handleWeather)
	r.Post("/save-itinerary", b.handleSave)
	r.Get("/fetch-itineraries", b.handleFetch)
	r.Post("/download-itinerary-pdf", b.handlePDF)
	r.Get("/user-info", b.handleUserInfo)
	r.Post("/register", b.handleAck)
	r.Post("/login", b.handleAck)

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the base URL of the fake backend.
func (b *Backend) URL() string { return b.Server.URL }

// LastGeneratePath returns the path of the most recent generation call.
func (b *Backend) LastGeneratePath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastGeneratePath
}

// LastGeneratePayload returns the decoded body of the most recent generation call.
func (b *Backend) LastGeneratePayload() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastGeneratePayload
}

// LastPlacesQuery returns the query values of the most recent places lookup.
func (b *Backend) LastPlacesQuery() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastPlacesQuery
}

// SavedFor returns how many records are stored for email.
func (b *Backend) SavedFor(email string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.saved[email])
}

func (b *Backend) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	_ = json.NewDecoder(r.Body).Decode(&payload)

	b.mu.Lock()
	b.lastGeneratePath = r.URL.Path
	b.lastGeneratePayload = payload
	status, body, it := b.GenerateStatus, b.GenerateBody, b.Itinerary
	b.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		w.Write([]byte(body))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"itinerary": it})
}

func (b *Backend) handleWeather(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	b.mu.Lock()
	stub, ok := b.Weather[location]
	b.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "weather unavailable for " + location})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name": stub.Name,
		"sys":  map[string]any{"country": stub.Country},
		"weather": []map[string]any{
			{"description": stub.Desc, "icon": stub.Icon},
		},
		"main": map[string]any{"temp": stub.TempK, "humidity": stub.Humidity},
	})
}

func (b *Backend) handlePlaces(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.lastPlacesQuery = r.URL.Query()
	status, places := b.PlacesStatus, b.Places
	b.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, map[string]any{"error": "places lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": places})
}

func (b *Backend) handleSave(w http.ResponseWriter, r *http.Request) {
	var rec domain.PersistenceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec.UserEmail == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No data or email provided"})
		return
	}

	b.mu.Lock()
	status := b.SaveStatus
	if status == 0 {
		b.saved[rec.UserEmail] = append(b.saved[rec.UserEmail], savedRecord{
			ID:        uuid.NewString(),
			CreatedAt: "2026-01-02T15:04:05Z",
			Itinerary: rec.Itinerary,
		})
	}
	b.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, map[string]any{"error": "User not found"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Itinerary saved successfully!"})
}

func (b *Backend) handleFetch(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Email parameter is required"})
		return
	}

	b.mu.Lock()
	records := b.saved[email]
	b.mu.Unlock()

	if len(records) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "No itineraries found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"itineraries": records})
}

func (b *Backend) handlePDF(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Itinerary *domain.Itinerary `json:"itinerary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Itinerary == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No itinerary data provided"})
		return
	}

	b.mu.Lock()
	pdf := b.PDF
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdf)
}

func (b *Backend) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	writeJSON(w, http.StatusOK, map[string]any{
		"user": map[string]any{"username": "traveler", "email": email},
	})
}

func (b *Backend) handleAck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"message": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
