package planner_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/domain"
	"tripweaver/internal/planner"
)

// mockGenerator is a hand-written test double for planner.Generator.
// Each method is a function field; set only the ones your test needs.
type mockGenerator struct {
	generate        func(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	withDestination func(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	withRequests    func(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	withBoth        func(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
}

func (m *mockGenerator) Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return m.generate(ctx, req)
}
func (m *mockGenerator) GenerateWithDestination(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return m.withDestination(ctx, req)
}
func (m *mockGenerator) GenerateWithRequests(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return m.withRequests(ctx, req)
}
func (m *mockGenerator) GenerateWithDestinationAndRequests(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return m.withBoth(ctx, req)
}

// compile-time check: mockGenerator must satisfy planner.Generator.
var _ planner.Generator = (*mockGenerator)(nil)

// recordingGenerator returns a mock where every variant succeeds and records
// its name into called.
func recordingGenerator(called *string) *mockGenerator {
	record := func(name string) func(context.Context, domain.TripRequest) (domain.Itinerary, error) {
		return func(_ context.Context, _ domain.TripRequest) (domain.Itinerary, error) {
			*called = name
			return domain.Itinerary{}, nil
		}
	}
	return &mockGenerator{
		generate:        record("base"),
		withDestination: record("destination"),
		withRequests:    record("requests"),
		withBoth:        record("destination+requests"),
	}
}

func validInput() planner.Input {
	return planner.Input{
		Budget:    "1000",
		Interests: "beach, hiking",
		Duration:  "3",
		Source:    "Mumbai",
	}
}

// ---- variant selection -----------------------------------------------------

func TestSelectVariant(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		requests    string
		want        planner.Variant
	}{
		{"neither", "", "", planner.VariantBase},
		{"destination only", "Goa", "", planner.VariantDestination},
		{"requests only", "", "no museums", planner.VariantRequests},
		{"both", "Goa", "no museums", planner.VariantDestinationRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.TripRequest{Destination: tt.destination, Requests: tt.requests}
			assert.Equal(t, tt.want, planner.SelectVariant(req))
		})
	}
}

func TestBuildAndSend_VariantDispatch(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		requests    string
		want        string
	}{
		{"neither set", "", "", "base"},
		{"destination only", "Goa", "", "destination"},
		{"requests only", "", "vegetarian food only", "requests"},
		{"both set", "Goa", "vegetarian food only", "destination+requests"},
		// Whitespace-only optionals are absent, not present.
		{"blank destination", "   ", "vegetarian food only", "requests"},
		{"blank requests", "Goa", "   ", "destination"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called string
			b := planner.NewBuilder(recordingGenerator(&called))

			in := validInput()
			in.Destination = tt.destination
			in.Requests = tt.requests

			_, err := b.BuildAndSend(context.Background(), in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, called)
		})
	}
}

// TestBuildAndSend_EmptyRequestsDoesNotShortCircuit is the regression case
// for the combined-variant check: destination present with an empty requests
// string must select the destination variant, never the combined one.
func TestBuildAndSend_EmptyRequestsDoesNotShortCircuit(t *testing.T) {
	var called string
	b := planner.NewBuilder(recordingGenerator(&called))

	in := planner.Input{
		Budget:      "1000",
		Interests:   "beach, hiking",
		Duration:    "3",
		Source:      "Mumbai",
		Destination: "Goa",
		Requests:    "",
	}

	_, err := b.BuildAndSend(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "destination", called)
}

// ---- validation ------------------------------------------------------------

func TestBuildAndSend_MissingMandatoryField(t *testing.T) {
	tests := []struct {
		field string
		mod   func(*planner.Input)
	}{
		{"budget", func(in *planner.Input) { in.Budget = "" }},
		{"interests", func(in *planner.Input) { in.Interests = "" }},
		{"duration", func(in *planner.Input) { in.Duration = "  " }},
		{"source", func(in *planner.Input) { in.Source = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			// A generator with nil fields: any call would panic, proving
			// validation fails before any network activity.
			b := planner.NewBuilder(&mockGenerator{})

			in := validInput()
			tt.mod(&in)

			_, err := b.BuildAndSend(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tt.field)
		})
	}
}

// ---- normalization ---------------------------------------------------------

func TestSplitInterests(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"simple", "beach, hiking", []string{"beach", "hiking"}},
		{"untrimmed", "  beach ,hiking  , food", []string{"beach", "hiking", "food"}},
		// Empty tokens are preserved, not filtered.
		{"trailing comma", "beach,", []string{"beach", ""}},
		{"doubled comma", "beach,,hiking", []string{"beach", "", "hiking"}},
		{"single", "beach", []string{"beach"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planner.SplitInterests(tt.raw))
		})
	}
}

func TestNormalize_IntegerCoercion(t *testing.T) {
	in := validInput()
	in.Budget = " 2500 "
	in.Duration = "5"

	req := in.Normalize()

	assert.Equal(t, 2500, req.Budget)
	assert.Equal(t, 5, req.Duration)
}

// Non-numeric values coerce to zero and are forwarded; the backend is the
// authoritative validator for numeric garbage.
func TestNormalize_NonNumericForwardsZero(t *testing.T) {
	in := validInput()
	in.Budget = "lots"

	req := in.Normalize()

	assert.Equal(t, 0, req.Budget)
}

func TestBuildAndSend_ForwardsNormalizedRequest(t *testing.T) {
	var got domain.TripRequest
	gen := &mockGenerator{
		withDestination: func(_ context.Context, req domain.TripRequest) (domain.Itinerary, error) {
			got = req
			return domain.Itinerary{Places: "Goa, Baga Beach"}, nil
		},
	}
	b := planner.NewBuilder(gen)

	in := validInput()
	in.Destination = " Goa "

	it, err := b.BuildAndSend(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 1000, got.Budget)
	assert.Equal(t, []string{"beach", "hiking"}, got.Interests)
	assert.Equal(t, 3, got.Duration)
	assert.Equal(t, "Mumbai", got.Source)
	assert.Equal(t, "Goa", got.Destination)

	// The result is stamped with the request's source and destination.
	assert.Equal(t, "Mumbai", it.Source)
	assert.Equal(t, "Goa", it.Destination)
}

// ---- error propagation -----------------------------------------------------

func TestBuildAndSend_RemoteErrorPropagates(t *testing.T) {
	remote := &domain.RemoteError{StatusCode: 500, Message: "Invalid budget"}
	gen := &mockGenerator{
		generate: func(_ context.Context, _ domain.TripRequest) (domain.Itinerary, error) {
			return domain.Itinerary{}, remote
		},
	}
	b := planner.NewBuilder(gen)

	_, err := b.BuildAndSend(context.Background(), validInput())

	require.Error(t, err)
	re, ok := domain.AsRemote(err)
	require.True(t, ok)
	// The backend's message survives unchanged.
	assert.Equal(t, "Invalid budget", re.Message)
}

func TestBuildAndSend_NetworkErrorPropagates(t *testing.T) {
	gen := &mockGenerator{
		generate: func(_ context.Context, _ domain.TripRequest) (domain.Itinerary, error) {
			return domain.Itinerary{}, fmt.Errorf("%w: connection refused", domain.ErrNetwork)
		},
	}
	b := planner.NewBuilder(gen)

	_, err := b.BuildAndSend(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrNetwork)
}
