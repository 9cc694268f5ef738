// Package planner turns raw user input into a generation call.
// It validates mandatory fields, normalizes the optional ones, picks which of
// the four generation endpoints to hit, and issues exactly one call; retry
// policy does not live here.
package planner

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tripweaver/internal/domain"
)

// Generator defines the generation operations the planner depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". gateway.Client
// satisfies it; tests inject a mock.
type Generator interface {
	Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	GenerateWithDestination(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	GenerateWithRequests(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
	GenerateWithDestinationAndRequests(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error)
}

// Input is the raw, unvalidated user input for one generation attempt.
// All fields are strings as the user typed them; Normalize handles trimming
// and numeric coercion.
type Input struct {
	Budget      string
	Interests   string
	Duration    string
	Source      string
	Destination string
	Requests    string
}

// Variant identifies which generation endpoint a request maps to.
type Variant int

const (
	// VariantBase has neither destination nor special requests.
	VariantBase Variant = iota
	// VariantDestination has an explicit destination only.
	VariantDestination
	// VariantRequests has free-text special requests only.
	VariantRequests
	// VariantDestinationRequests has both.
	VariantDestinationRequests
)

func (v Variant) String() string {
	switch v {
	case VariantDestination:
		return "destination"
	case VariantRequests:
		return "requests"
	case VariantDestinationRequests:
		return "destination+requests"
	default:
		return "base"
	}
}

// Validate checks that every mandatory field is present, before any
// normalization or network activity. The error wraps domain.ErrValidation
// and names the first missing field.
func (in Input) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"budget", in.Budget},
		{"interests", in.Interests},
		{"duration", in.Duration},
		{"source", in.Source},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}
	return nil
}

// Normalize converts the raw input into a TripRequest. Optional fields are
// trimmed, with whitespace-only values treated as absent. Budget and duration
// are coerced with strconv.Atoi; a failed parse forwards the zero value; the
// backend is the authoritative validator for numeric garbage, this layer only
// rejects missing fields.
func (in Input) Normalize() domain.TripRequest {
	budget, _ := strconv.Atoi(strings.TrimSpace(in.Budget))
	duration, _ := strconv.Atoi(strings.TrimSpace(in.Duration))

	return domain.TripRequest{
		Budget:      budget,
		Interests:   SplitInterests(in.Interests),
		Duration:    duration,
		Source:      strings.TrimSpace(in.Source),
		Destination: strings.TrimSpace(in.Destination),
		Requests:    strings.TrimSpace(in.Requests),
	}
}

// SplitInterests splits a raw comma-separated interests string into trimmed
// tokens. Empty tokens (from doubled or trailing commas) are NOT filtered:
// the backend has always received them and filtering here would silently
// change what it sees.
func SplitInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// SelectVariant picks the generation endpoint for a normalized request.
// Precedence, evaluated once: both optional fields present → combined;
// destination only → destination; requests only → requests; neither → base.
// Presence means non-empty after normalization, so a blank requests field
// never drags a destination-only trip onto the combined endpoint.
func SelectVariant(req domain.TripRequest) Variant {
	switch {
	case req.HasDestination() && req.HasRequests():
		return VariantDestinationRequests
	case req.HasDestination():
		return VariantDestination
	case req.HasRequests():
		return VariantRequests
	default:
		return VariantBase
	}
}

// Builder validates input and runs the selected generation call.
type Builder struct {
	gen Generator
}

// NewBuilder constructs a Builder backed by the provided Generator.
func NewBuilder(gen Generator) *Builder {
	return &Builder{gen: gen}
}

// BuildAndSend validates, normalizes, selects a variant, and makes the single
// generation call. On success the returned itinerary is stamped with the
// request's source and destination so downstream enrichment can key weather
// off them; the generator does not echo them back.
func (b *Builder) BuildAndSend(ctx context.Context, in Input) (domain.Itinerary, error) {
	if err := in.Validate(); err != nil {
		return domain.Itinerary{}, fmt.Errorf("planner.Builder.BuildAndSend: %w", err)
	}

	req := in.Normalize()

	var (
		it  domain.Itinerary
		err error
	)
	switch SelectVariant(req) {
	case VariantDestinationRequests:
		it, err = b.gen.GenerateWithDestinationAndRequests(ctx, req)
	case VariantDestination:
		it, err = b.gen.GenerateWithDestination(ctx, req)
	case VariantRequests:
		it, err = b.gen.GenerateWithRequests(ctx, req)
	default:
		it, err = b.gen.Generate(ctx, req)
	}
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("planner.Builder.BuildAndSend: %w", err)
	}

	it.Source = req.Source
	it.Destination = req.Destination
	return it, nil
}
