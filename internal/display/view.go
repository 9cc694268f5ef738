package display

import (
	"fmt"
	"strings"

	"tripweaver/internal/domain"
)

// View renders the current state as plain text. Presentation is deliberately
// minimal; the interesting behavior lives in Update.
func (m Model) View() string {
	var b strings.Builder

	// First load: nothing to show yet but the spinner. On re-generation the
	// previous itinerary stays visible below a regenerating banner instead.
	if m.state == StateLoading && m.version == 0 {
		fmt.Fprintf(&b, "\n  %s Generating itinerary...\n", m.spinner.View())
		return b.String()
	}
	if m.state == StateEmpty {
		b.WriteString("\n  No itinerary.\n")
		if m.status != "" {
			fmt.Fprintf(&b, "\n  %s\n", m.status)
		}
		fmt.Fprintf(&b, "\n  q quit\n")
		return b.String()
	}

	if m.state == StateLoading {
		fmt.Fprintf(&b, "  %s regenerating...\n\n", m.spinner.View())
	}
	title := m.itin.Source
	if dest := m.itin.DestinationName(); dest != "" {
		title += " → " + dest
	}
	fmt.Fprintf(&b, "  %s\n", title)
	b.WriteString("  " + strings.Repeat("─", len([]rune(title))+2) + "\n")

	b.WriteString(renderWeatherLine("Source", m.sourceWeather))
	b.WriteString(renderWeatherLine("Destination", m.destWeather))
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	} else {
		b.WriteString(renderItinerary(m.itin))
	}

	if m.exploreOpen {
		b.WriteString(m.renderExplorePicker())
	}
	if m.resultsOpen {
		b.WriteString(renderPlaces(m.places))
	}

	if m.status != "" {
		fmt.Fprintf(&b, "\n  %s\n", m.status)
	}
	if m.saving {
		fmt.Fprintf(&b, "  %s saving\n", m.spinner.View())
	}

	b.WriteString("\n  1-9 explore day · s save · x export pdf · r regenerate · q quit\n")
	return b.String()
}

// renderWeatherLine formats one weather slot, or nothing when unset; a
// failed or skipped fetch leaves no trace in the UI.
func renderWeatherLine(label string, w *domain.WeatherSnapshot) string {
	if w == nil {
		return ""
	}
	return fmt.Sprintf("  %s: %s, %s (%.1f°C, %.0f%% humidity)\n",
		label, w.LocationName, w.Condition, w.TemperatureC(), w.HumidityPct)
}

// renderItinerary formats the full day-by-day plan plus budget and notes.
func renderItinerary(it domain.Itinerary) string {
	var b strings.Builder

	for _, day := range it.Days.Days {
		fmt.Fprintf(&b, "  Day %d: %s\n", day.Day, day.Heading)
		if day.Description != "" {
			fmt.Fprintf(&b, "    %s\n", day.Description)
		}
		for _, a := range day.Activities {
			fmt.Fprintf(&b, "    • %s (%s) %s\n", a.Name, a.Type, a.Cost)
		}
		b.WriteString("\n")
	}

	if len(it.Budget.Breakdown) > 0 || it.Budget.Total != "" {
		b.WriteString("  Budget\n")
		for category, cost := range it.Budget.Breakdown {
			fmt.Fprintf(&b, "    %s: %s\n", category, cost)
		}
		if it.Budget.Total != "" {
			fmt.Fprintf(&b, "    total: %s\n", it.Budget.Total)
		}
		b.WriteString("\n")
	}

	if it.Places != "" {
		fmt.Fprintf(&b, "  Places: %s\n", it.Places)
	}
	if it.Notes != "" {
		fmt.Fprintf(&b, "  Notes: %s\n", it.Notes)
	}

	return b.String()
}

// renderExplorePicker shows the category picker for the selected day.
func (m Model) renderExplorePicker() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  Explore places - day %d\n  ", m.selectedDay)
	for i, cat := range exploreCategories {
		if i == m.categoryIdx {
			fmt.Fprintf(&b, "[%s] ", cat)
		} else {
			fmt.Fprintf(&b, " %s  ", cat)
		}
	}
	b.WriteString("\n  tab cycle · enter search · esc close\n")
	return b.String()
}

// renderPlaces formats the results view.
func renderPlaces(places []domain.PlaceResult) string {
	var b strings.Builder
	b.WriteString("\n  Places found:\n")
	if len(places) == 0 {
		b.WriteString("    (none)\n")
	}
	for _, p := range places {
		fmt.Fprintf(&b, "    %s - %s", p.Name, p.Address)
		if p.Rating > 0 {
			fmt.Fprintf(&b, " (%.1f★)", p.Rating)
		}
		b.WriteString("\n")
	}
	b.WriteString("  esc close\n")
	return b.String()
}
