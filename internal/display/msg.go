package display

import "tripweaver/internal/domain"

// Bubble Tea message types. One struct per asynchronous result; the commands
// in cmd.go produce them and Model.Update consumes them. They are exported so
// an embedding presentation layer (and tests) can drive the state machine
// directly.
//
// Weather and places messages carry the itinerary version that was current
// when their command was dispatched. A result from a superseded itinerary
// arrives with a stale version and is discarded; there is no cancellation of
// in-flight calls, only this guard.

// ItineraryMsg is sent when a generation call succeeds.
type ItineraryMsg struct {
	Itinerary domain.Itinerary
}

// GenerateFailedMsg is sent when a generation call fails.
type GenerateFailedMsg struct {
	Err error
}

// WeatherSlot names which of the two independent weather slots a result is for.
type WeatherSlot int

const (
	SlotSource WeatherSlot = iota
	SlotDestination
)

func (s WeatherSlot) String() string {
	if s == SlotDestination {
		return "destination"
	}
	return "source"
}

// WeatherMsg is sent when a weather fetch succeeds.
type WeatherMsg struct {
	Slot     WeatherSlot
	Version  int
	Snapshot domain.WeatherSnapshot
}

// WeatherFailedMsg is sent when a weather fetch fails. The failure is
// isolated to its slot: it is logged and the slot stays unset.
type WeatherFailedMsg struct {
	Slot    WeatherSlot
	Version int
	Err     error
}

// PlacesMsg is sent when an explore-places lookup succeeds.
type PlacesMsg struct {
	Version int
	Results []domain.PlaceResult
}

// PlacesFailedMsg is sent when an explore-places lookup fails.
type PlacesFailedMsg struct {
	Version int
	Err     error
}

// SavedMsg is sent when a save completes, carrying the backend's
// acknowledgment message.
type SavedMsg struct {
	Message string
}

// SaveFailedMsg is sent when a save fails.
type SaveFailedMsg struct {
	Err error
}

// ExportedMsg is sent when a PDF export has been written to disk.
type ExportedMsg struct {
	Path string
}

// ExportFailedMsg is sent when a PDF export fails.
type ExportFailedMsg struct {
	Err error
}
