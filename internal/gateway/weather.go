package gateway

import (
	"context"
	"fmt"
	"net/url"

	"tripweaver/internal/domain"
)

// owmResponse mirrors the OpenWeatherMap current-weather shape the backend
// proxies through unchanged. Only the fields the display needs are decoded.
type owmResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

func (r owmResponse) snapshot() domain.WeatherSnapshot {
	s := domain.WeatherSnapshot{
		LocationName: r.Name,
		CountryCode:  r.Sys.Country,
		TemperatureK: r.Main.Temp,
		HumidityPct:  r.Main.Humidity,
	}
	if len(r.Weather) > 0 {
		s.Condition = r.Weather[0].Description
		s.IconID = r.Weather[0].Icon
	}
	return s
}

// Weather fetches current weather for the trip source location.
func (c *Client) Weather(ctx context.Context, location string) (domain.WeatherSnapshot, error) {
	return c.weather(ctx, "/get-weather", location)
}

// DestinationWeather fetches current weather for the trip destination.
// The backend exposes this as a separate route from Weather even though the
// response shape is identical.
func (c *Client) DestinationWeather(ctx context.Context, location string) (domain.WeatherSnapshot, error) {
	return c.weather(ctx, "/get-destination-weather", location)
}

func (c *Client) weather(ctx context.Context, path, location string) (domain.WeatherSnapshot, error) {
	var resp owmResponse
	q := url.Values{"location": {location}}
	if err := c.getJSON(ctx, path, q, &resp); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("gateway.Client.Weather: %w", err)
	}
	return resp.snapshot(), nil
}
