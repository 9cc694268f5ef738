package domain

// PlaceResult is one hit from a places lookup, scoped to a single
// (location, category) query. Results are transient: a new explore query
// replaces the previous set, and dismissing the results view discards them.
type PlaceResult struct {
	Name    string  `json:"name"`
	Address string  `json:"formatted_address"`
	Rating  float64 `json:"rating,omitempty"`
}
