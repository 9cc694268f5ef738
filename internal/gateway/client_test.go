package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/domain"
	"tripweaver/internal/gateway"
	"tripweaver/testutil"
)

func testItinerary() domain.Itinerary {
	return domain.Itinerary{
		Budget: domain.BudgetPlan{
			Breakdown: map[string]string{"food": "3000 INR", "transportation": "2000 INR"},
			Total:     "5000 INR",
		},
		Days: domain.DayList{Days: []domain.DayPlan{
			{Day: 1, Heading: "Arrival", Description: "Reach Goa", Activities: []domain.Activity{
				{Name: "Baga Beach", Type: "sightseeing", Cost: "free"},
			}},
			{Day: 2, Heading: "Beaches", Description: "North Goa"},
			{Day: 3, Heading: "Departure", Description: "Fly home"},
		}},
		Places: "Goa, Baga Beach, Anjuna",
		Notes:  "Carry sunscreen",
	}
}

// ---- generation ------------------------------------------------------------

func TestGenerate_HitsVariantEndpoints(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Itinerary = testItinerary()
	c := gateway.New(backend.URL())

	req := domain.TripRequest{
		Budget:      1000,
		Interests:   []string{"beach", "hiking"},
		Duration:    3,
		Source:      "Mumbai",
		Destination: "Goa",
		Requests:    "vegetarian food",
	}
	ctx := context.Background()

	tests := []struct {
		name string
		call func() (domain.Itinerary, error)
		path string
	}{
		{"base", func() (domain.Itinerary, error) { return c.Generate(ctx, req) },
			"/generate-itinerary"},
		{"destination", func() (domain.Itinerary, error) { return c.GenerateWithDestination(ctx, req) },
			"/generate-itinerary-with-destination"},
		{"requests", func() (domain.Itinerary, error) { return c.GenerateWithRequests(ctx, req) },
			"/generate-itinerary-with-requests"},
		{"combined", func() (domain.Itinerary, error) { return c.GenerateWithDestinationAndRequests(ctx, req) },
			"/generate-itinerary-with-destination-and-requests"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := tt.call()

			require.NoError(t, err)
			assert.Equal(t, tt.path, backend.LastGeneratePath())
			assert.Len(t, it.Days.Days, 3)
			assert.True(t, it.DaysContiguous())
		})
	}
}

func TestGenerate_PayloadShape(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Itinerary = testItinerary()
	c := gateway.New(backend.URL())

	req := domain.TripRequest{
		Budget:    1000,
		Interests: []string{"beach", "hiking"},
		Duration:  3,
		Source:    "Mumbai",
	}
	_, err := c.Generate(context.Background(), req)
	require.NoError(t, err)

	payload := backend.LastGeneratePayload()
	assert.EqualValues(t, 1000, payload["budget"])
	assert.EqualValues(t, 3, payload["duration"])
	assert.Equal(t, "Mumbai", payload["source"])
	// Absent optionals stay off the wire entirely.
	assert.NotContains(t, payload, "destination")
	assert.NotContains(t, payload, "requests")
}

func TestGenerate_RemoteErrorVerbatim(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.GenerateStatus = 500
	backend.GenerateBody = `{"message": "Invalid budget"}`
	c := gateway.New(backend.URL())

	_, err := c.Generate(context.Background(), domain.TripRequest{Source: "Mumbai"})

	require.Error(t, err)
	re, ok := domain.AsRemote(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid budget", re.Message)
	assert.Equal(t, 500, re.StatusCode)
}

// Plain-text failure bodies (some backend routes skip JSON) are surfaced as-is.
func TestGenerate_PlainTextErrorBody(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.GenerateStatus = 400
	backend.GenerateBody = "Bad request"
	c := gateway.New(backend.URL())

	_, err := c.Generate(context.Background(), domain.TripRequest{})

	re, ok := domain.AsRemote(err)
	require.True(t, ok)
	assert.Equal(t, "Bad request", re.Message)
}

func TestGenerate_NetworkError(t *testing.T) {
	backend := testutil.NewBackend(t)
	url := backend.URL()
	backend.Server.Close() // nothing listening anymore

	c := gateway.New(url)
	_, err := c.Generate(context.Background(), domain.TripRequest{})

	assert.ErrorIs(t, err, domain.ErrNetwork)
}

// ---- weather ---------------------------------------------------------------

func TestWeather_DecodesProviderShape(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Weather["Mumbai"] = testutil.WeatherStub{
		Name: "Mumbai", Country: "IN", Desc: "haze", Icon: "50d",
		TempK: 303.15, Humidity: 74,
	}
	c := gateway.New(backend.URL())

	snap, err := c.Weather(context.Background(), "Mumbai")

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", snap.LocationName)
	assert.Equal(t, "IN", snap.CountryCode)
	assert.Equal(t, "haze", snap.Condition)
	assert.Equal(t, "50d", snap.IconID)
	assert.InDelta(t, 30.0, snap.TemperatureC(), 0.01)
	assert.InDelta(t, 74, snap.HumidityPct, 0.01)
}

func TestDestinationWeather_UnknownLocationFails(t *testing.T) {
	backend := testutil.NewBackend(t)
	c := gateway.New(backend.URL())

	_, err := c.DestinationWeather(context.Background(), "Atlantis")

	re, ok := domain.AsRemote(err)
	require.True(t, ok)
	assert.Contains(t, re.Message, "Atlantis")
}

// ---- places ----------------------------------------------------------------

func TestPlaces_QueryAndDecode(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Places = []domain.PlaceResult{
		{Name: "Britto's", Address: "Baga Beach Rd", Rating: 4.2},
	}
	c := gateway.New(backend.URL())

	got, err := c.Places(context.Background(), "Goa", "restaurant")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Britto's", got[0].Name)

	q := backend.LastPlacesQuery()
	assert.Equal(t, "Goa", q.Get("location_name"))
	assert.Equal(t, "restaurant", q.Get("type"))
}

// ---- save / fetch ----------------------------------------------------------

// TestSaveFetch_RoundTrip saves an itinerary and fetches it back, checking
// the day sequence survives storage with length, order, and numbering intact.
func TestSaveFetch_RoundTrip(t *testing.T) {
	backend := testutil.NewBackend(t)
	c := gateway.New(backend.URL())
	ctx := context.Background()

	original := testItinerary()
	original.Source = "Mumbai"

	msg, err := c.SaveItinerary(ctx, domain.PersistenceRecord{
		UserEmail: "ana@example.com",
		Itinerary: original,
	})
	require.NoError(t, err)
	assert.Equal(t, "Itinerary saved successfully!", msg)

	saved, err := c.FetchItineraries(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, saved, 1)

	got := saved[0].Itinerary
	require.Len(t, got.Days.Days, len(original.Days.Days))
	for i, day := range got.Days.Days {
		assert.Equal(t, original.Days.Days[i].Day, day.Day)
		assert.Equal(t, original.Days.Days[i].Heading, day.Heading)
	}
	assert.True(t, got.DaysContiguous())
}

func TestSaveItinerary_RemoteFailure(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.SaveStatus = 404
	c := gateway.New(backend.URL())

	_, err := c.SaveItinerary(context.Background(), domain.PersistenceRecord{
		UserEmail: "nobody@example.com",
		Itinerary: testItinerary(),
	})

	re, ok := domain.AsRemote(err)
	require.True(t, ok)
	assert.Equal(t, "User not found", re.Message)
}

func TestFetchItineraries_NoneSaved(t *testing.T) {
	backend := testutil.NewBackend(t)
	c := gateway.New(backend.URL())

	_, err := c.FetchItineraries(context.Background(), "new@example.com")

	// The backend answers 404 with a message when nothing is stored.
	re, ok := domain.AsRemote(err)
	require.True(t, ok)
	assert.Equal(t, "No itineraries found", re.Message)
}

// ---- export ----------------------------------------------------------------

func TestDownloadPDF_ReturnsOpaqueBytes(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.PDF = []byte("%PDF-1.4 itinerary document")
	c := gateway.New(backend.URL())

	data, err := c.DownloadPDF(context.Background(), testItinerary())

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 itinerary document"), data)
}

// ---- auth ------------------------------------------------------------------

func TestUserInfo(t *testing.T) {
	backend := testutil.NewBackend(t)
	c := gateway.New(backend.URL())

	profile, err := c.UserInfo(context.Background(), "ana@example.com")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", profile.Email)
}
