package domain

// WeatherSnapshot is a point-in-time weather reading for a named location.
// Two independent snapshots may be held at once, one for the trip source and
// one for the destination, and either may be missing when its fetch failed
// or its location was never known.
type WeatherSnapshot struct {
	LocationName string  `json:"location_name"`
	CountryCode  string  `json:"country_code"`
	Condition    string  `json:"condition"`
	IconID       string  `json:"icon_id"`
	TemperatureK float64 `json:"temperature_k"`
	HumidityPct  float64 `json:"humidity_pct"`
}

// TemperatureC returns the temperature converted from Kelvin to Celsius.
// The upstream weather provider reports Kelvin.
func (w WeatherSnapshot) TemperatureC() float64 {
	return w.TemperatureK - 273.15
}
