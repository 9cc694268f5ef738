package gateway

import (
	"context"
	"fmt"
	"net/url"

	"tripweaver/internal/domain"
)

// generatePayload is the wire request shared by all four generation variants.
// Destination and Requests are omitted when absent, so the same struct
// serializes correctly for every endpoint.
type generatePayload struct {
	Budget      int      `json:"budget"`
	Interests   []string `json:"interests"`
	Duration    int      `json:"duration"`
	Source      string   `json:"source"`
	Destination string   `json:"destination,omitempty"`
	Requests    string   `json:"requests,omitempty"`
}

// generateEnvelope wraps the response: the backend nests the generated plan
// under an "itinerary" key.
type generateEnvelope struct {
	Itinerary domain.Itinerary `json:"itinerary"`
}

// Generate invokes the base generation endpoint (no destination, no requests).
func (c *Client) Generate(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return c.generate(ctx, "/generate-itinerary", generatePayload{
		Budget:    req.Budget,
		Interests: req.Interests,
		Duration:  req.Duration,
		Source:    req.Source,
	})
}

// GenerateWithDestination invokes the destination variant.
func (c *Client) GenerateWithDestination(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return c.generate(ctx, "/generate-itinerary-with-destination", generatePayload{
		Budget:      req.Budget,
		Interests:   req.Interests,
		Duration:    req.Duration,
		Source:      req.Source,
		Destination: req.Destination,
	})
}

// GenerateWithRequests invokes the special-requests variant.
func (c *Client) GenerateWithRequests(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return c.generate(ctx, "/generate-itinerary-with-requests", generatePayload{
		Budget:    req.Budget,
		Interests: req.Interests,
		Duration:  req.Duration,
		Source:    req.Source,
		Requests:  req.Requests,
	})
}

// GenerateWithDestinationAndRequests invokes the combined variant.
func (c *Client) GenerateWithDestinationAndRequests(ctx context.Context, req domain.TripRequest) (domain.Itinerary, error) {
	return c.generate(ctx, "/generate-itinerary-with-destination-and-requests", generatePayload{
		Budget:      req.Budget,
		Interests:   req.Interests,
		Duration:    req.Duration,
		Source:      req.Source,
		Destination: req.Destination,
		Requests:    req.Requests,
	})
}

func (c *Client) generate(ctx context.Context, path string, payload generatePayload) (domain.Itinerary, error) {
	var env generateEnvelope
	if err := c.postJSON(ctx, path, payload, &env); err != nil {
		return domain.Itinerary{}, fmt.Errorf("gateway.Client.Generate: %w", err)
	}
	return env.Itinerary, nil
}

// SaveItinerary persists an itinerary for the record's user. The returned
// string is the backend's acknowledgment message.
func (c *Client) SaveItinerary(ctx context.Context, rec domain.PersistenceRecord) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/save-itinerary", rec, &resp); err != nil {
		return "", fmt.Errorf("gateway.Client.SaveItinerary: %w", err)
	}
	return resp.Message, nil
}

// FetchItineraries returns every itinerary previously saved for email,
// oldest first, exactly as stored.
func (c *Client) FetchItineraries(ctx context.Context, email string) ([]domain.SavedItinerary, error) {
	var resp struct {
		Itineraries []domain.SavedItinerary `json:"itineraries"`
	}
	q := url.Values{"email": {email}}
	if err := c.getJSON(ctx, "/fetch-itineraries", q, &resp); err != nil {
		return nil, fmt.Errorf("gateway.Client.FetchItineraries: %w", err)
	}
	return resp.Itineraries, nil
}

// DownloadPDF renders the itinerary as a PDF and returns the raw bytes.
// The document is regenerated on every call; nothing is cached.
func (c *Client) DownloadPDF(ctx context.Context, it domain.Itinerary) ([]byte, error) {
	payload := struct {
		Itinerary domain.Itinerary `json:"itinerary"`
	}{Itinerary: it}

	var body []byte
	if err := c.postJSON(ctx, "/download-itinerary-pdf", payload, &body); err != nil {
		return nil, fmt.Errorf("gateway.Client.DownloadPDF: %w", err)
	}
	return body, nil
}
