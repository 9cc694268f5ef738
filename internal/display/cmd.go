package display

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tripweaver/internal/domain"
	"tripweaver/internal/planner"
)

// exportFileName is the fixed name the exported document is written under,
// matching what the web client has always called its download.
const exportFileName = "travel_itinerary.pdf"

// generateCmd runs the full request-builder pipeline as a background command.
func generateCmd(b ItineraryBuilder, in planner.Input) tea.Cmd {
	return func() tea.Msg {
		it, err := b.BuildAndSend(context.Background(), in)
		if err != nil {
			return GenerateFailedMsg{Err: err}
		}
		return ItineraryMsg{Itinerary: it}
	}
}

// fetchWeatherCmd fetches one weather slot. The version is captured at
// dispatch so Update can drop the result if the itinerary has moved on.
func fetchWeatherCmd(fetch func(context.Context, string) (domain.WeatherSnapshot, error), slot WeatherSlot, location string, version int) tea.Cmd {
	return func() tea.Msg {
		snap, err := fetch(context.Background(), location)
		if err != nil {
			return WeatherFailedMsg{Slot: slot, Version: version, Err: err}
		}
		return WeatherMsg{Slot: slot, Version: version, Snapshot: snap}
	}
}

// enrichCmds builds the weather enrichment batch for a freshly set itinerary.
// The two fetches are independent and unordered; either slot is skipped when
// its location is unknown. Returns nil when there is nothing to fetch.
func enrichCmds(gw Gateway, it domain.Itinerary, version int) tea.Cmd {
	var cmds []tea.Cmd
	if it.Source != "" {
		cmds = append(cmds, fetchWeatherCmd(gw.Weather, SlotSource, it.Source, version))
	}
	if dest := it.DestinationName(); dest != "" {
		cmds = append(cmds, fetchWeatherCmd(gw.DestinationWeather, SlotDestination, dest, version))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// explorePlacesCmd looks up places of one category near a location.
func explorePlacesCmd(gw Gateway, location, category string, version int) tea.Cmd {
	return func() tea.Msg {
		results, err := gw.Places(context.Background(), location, category)
		if err != nil {
			return PlacesFailedMsg{Version: version, Err: err}
		}
		return PlacesMsg{Version: version, Results: results}
	}
}

// saveCmd persists the itinerary under the user's email.
func saveCmd(gw Gateway, email string, it domain.Itinerary) tea.Cmd {
	return func() tea.Msg {
		msg, err := gw.SaveItinerary(context.Background(), domain.PersistenceRecord{
			UserEmail: email,
			Itinerary: it,
		})
		if err != nil {
			return SaveFailedMsg{Err: err}
		}
		return SavedMsg{Message: msg}
	}
}

// exportCmd requests the rendered PDF and writes it to the fixed file name.
// The document is never cached; a second export re-requests it.
func exportCmd(gw Gateway, it domain.Itinerary) tea.Cmd {
	return func() tea.Msg {
		data, err := gw.DownloadPDF(context.Background(), it)
		if err != nil {
			return ExportFailedMsg{Err: err}
		}
		if err := os.WriteFile(exportFileName, data, 0o644); err != nil {
			return ExportFailedMsg{Err: err}
		}
		return ExportedMsg{Path: exportFileName}
	}
}
