// Package domain contains the core data types for tripweaver.
// This package has zero external dependencies and is imported by every other
// internal package (gateway, planner, display).
package domain

import "strings"

// TripRequest is a normalized set of trip parameters ready to be sent to the
// itinerary generator. Budget, Interests, Duration, and Source are mandatory;
// Destination and Requests are optional, with the empty string meaning absent.
//
// Normalization (trimming, interest splitting, integer coercion) happens in
// the planner package; by the time a TripRequest exists, "present but empty"
// and "absent" are the same thing.
type TripRequest struct {
	Budget      int      `json:"budget"`
	Interests   []string `json:"interests"`
	Duration    int      `json:"duration"`
	Source      string   `json:"source"`
	Destination string   `json:"destination,omitempty"`
	Requests    string   `json:"requests,omitempty"`
}

// HasDestination reports whether an explicit destination was supplied.
func (r TripRequest) HasDestination() bool { return r.Destination != "" }

// HasRequests reports whether free-text special requests were supplied.
func (r TripRequest) HasRequests() bool { return r.Requests != "" }

// Itinerary is a generated multi-day travel plan. It is owned by the display
// layer once received and is never mutated in place; a new generation result
// replaces it wholesale.
//
// Source and Destination are stamped from the originating TripRequest by the
// planner; the generator itself does not echo them back.
type Itinerary struct {
	Budget      BudgetPlan `json:"budget"`
	Days        DayList    `json:"itinerary"`
	Places      string     `json:"places"`
	Notes       string     `json:"notes,omitempty"`
	Source      string     `json:"source,omitempty"`
	Destination string     `json:"destination,omitempty"`
}

// BudgetPlan is the cost breakdown of an itinerary. The generator emits costs
// as strings (often with currency text mixed in), so they are kept verbatim.
type BudgetPlan struct {
	Breakdown map[string]string `json:"breakdown"`
	Total     string            `json:"total"`
}

// DayList wraps the day sequence. The extra level of nesting mirrors the wire
// format, where the day plans sit under an "itinerary" key inside the
// itinerary object.
type DayList struct {
	Days []DayPlan `json:"days"`
}

// DayPlan is one day of an itinerary. Day is 1-based and must match the
// day's position in the sequence; it is the key used for explore lookups.
type DayPlan struct {
	Day         int        `json:"day"`
	Heading     string     `json:"heading"`
	Description string     `json:"description"`
	Activities  []Activity `json:"activities"`
}

// Activity is a single planned activity within a day.
type Activity struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Cost string `json:"cost"`
}

// DestinationName returns the location to use for destination weather: the
// explicit destination when present, otherwise the first entry of the
// comma-separated Places list. Returns "" when neither yields a name.
func (it Itinerary) DestinationName() string {
	if it.Destination != "" {
		return it.Destination
	}
	return firstPlace(it.Places)
}

// firstPlace extracts the first comma-separated token of a places string.
func firstPlace(places string) string {
	if places == "" {
		return ""
	}
	first, _, _ := strings.Cut(places, ",")
	return strings.TrimSpace(first)
}

// DaysContiguous reports whether the day numbers are 1-based, contiguous, and
// match slice order. Generated itineraries are expected to satisfy this; day
// numbers double as sequence keys only when it holds.
func (it Itinerary) DaysContiguous() bool {
	for i, d := range it.Days.Days {
		if d.Day != i+1 {
			return false
		}
	}
	return true
}
