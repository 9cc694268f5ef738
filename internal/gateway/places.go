package gateway

import (
	"context"
	"fmt"
	"net/url"

	"tripweaver/internal/domain"
)

// Places looks up points of interest of the given type near a location.
// placeType is a free-form category ("restaurant", "museum", ...) passed
// through to the backend's place search.
func (c *Client) Places(ctx context.Context, locationName, placeType string) ([]domain.PlaceResult, error) {
	var resp struct {
		Results []domain.PlaceResult `json:"results"`
	}
	q := url.Values{
		"location_name": {locationName},
		"type":          {placeType},
	}
	if err := c.getJSON(ctx, "/get-places", q, &resp); err != nil {
		return nil, fmt.Errorf("gateway.Client.Places: %w", err)
	}
	return resp.Results, nil
}
