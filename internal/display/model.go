// Package display implements the itinerary display as a Bubble Tea program.
// The model is the display state machine: Update runs on a single goroutine
// (the event loop), backend calls run as tea.Cmd closures, and their results
// come back as the typed messages in msg.go. Because only Update mutates
// state, no locking is needed. The one race worth guarding is a slow
// response arriving after its itinerary has been replaced, handled by the
// version check on enrichment messages.
package display

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tripweaver/internal/domain"
	"tripweaver/internal/planner"
)

// Gateway defines the backend operations the display depends on. The
// generation endpoints are not here; generation goes through the planner.
// gateway.Client satisfies this; tests inject a mock.
type Gateway interface {
	Weather(ctx context.Context, location string) (domain.WeatherSnapshot, error)
	DestinationWeather(ctx context.Context, location string) (domain.WeatherSnapshot, error)
	Places(ctx context.Context, locationName, placeType string) ([]domain.PlaceResult, error)
	SaveItinerary(ctx context.Context, rec domain.PersistenceRecord) (string, error)
	DownloadPDF(ctx context.Context, it domain.Itinerary) ([]byte, error)
}

// ItineraryBuilder is the slice of the planner the display needs.
type ItineraryBuilder interface {
	BuildAndSend(ctx context.Context, in planner.Input) (domain.Itinerary, error)
}

// State is the top-level display state.
type State int

const (
	// StateEmpty: no itinerary has ever been displayed.
	StateEmpty State = iota
	// StateLoading: a generation call is in flight.
	StateLoading
	// StateLoaded: an itinerary is on screen.
	StateLoaded
)

// exploreCategories are the place categories offered in the explore view.
var exploreCategories = []string{"restaurant", "cafe", "park", "museum", "tourist_attraction"}

// Model holds all display state. Sub-flags below the state are independent
// and orthogonal: saving, the explore picker, and the results view don't
// gate each other, only the operations they belong to.
type Model struct {
	builder ItineraryBuilder
	gw      Gateway
	log     *slog.Logger

	// email is the resolved user identity. Empty means saving is disabled.
	email string
	// input is kept so the user can re-generate without retyping.
	input planner.Input

	state State
	itin  domain.Itinerary
	// version increments each time a new itinerary is set. Enrichment
	// results carrying an older version are discarded.
	version int

	sourceWeather *domain.WeatherSnapshot
	destWeather   *domain.WeatherSnapshot

	places      []domain.PlaceResult
	exploreOpen bool
	resultsOpen bool
	selectedDay int
	categoryIdx int

	saving bool
	status string

	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// New constructs the display model. The generation call fires from Init, so
// the program starts in StateLoading.
func New(builder ItineraryBuilder, gw Gateway, log *slog.Logger, email string, input planner.Input) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		builder: builder,
		gw:      gw,
		log:     log,
		email:   email,
		input:   input,
		state:   StateLoading,
		spinner: sp,
	}
}

// State returns the current top-level state.
func (m Model) State() State { return m.state }

// Itinerary returns the currently displayed itinerary (zero value in
// StateEmpty and during the first load).
func (m Model) Itinerary() domain.Itinerary { return m.itin }

// Version returns the monotonic itinerary version. It starts at zero and
// advances each time a generation result is installed.
func (m Model) Version() int { return m.version }

// SourceWeather returns the source weather slot, nil when unset.
func (m Model) SourceWeather() *domain.WeatherSnapshot { return m.sourceWeather }

// DestinationWeather returns the destination weather slot, nil when unset.
func (m Model) DestinationWeather() *domain.WeatherSnapshot { return m.destWeather }

// Places returns the current explore results, nil when the results view is closed.
func (m Model) Places() []domain.PlaceResult { return m.places }

// ExploreOpen reports whether the category picker is open.
func (m Model) ExploreOpen() bool { return m.exploreOpen }

// ResultsOpen reports whether the explore results view is open.
func (m Model) ResultsOpen() bool { return m.resultsOpen }

// SavingInFlight reports whether a save is currently in flight.
func (m Model) SavingInFlight() bool { return m.saving }

// Status returns the last user-facing acknowledgment line.
func (m Model) Status() string { return m.status }

// Init fires the first generation call alongside the spinner tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, generateCmd(m.builder, m.input))
}

// Update is the single writer for all display state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-10, 5))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-10, 5)
		}
		if m.state == StateLoaded {
			m.viewport.SetContent(renderItinerary(m.itin))
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ItineraryMsg:
		return m.setItinerary(msg.Itinerary)

	case GenerateFailedMsg:
		return m.generateFailed(msg.Err)

	case WeatherMsg:
		if msg.Version != m.version {
			m.log.Debug("discarding stale weather result", "slot", msg.Slot.String(), "version", msg.Version)
			return m, nil
		}
		snap := msg.Snapshot
		if msg.Slot == SlotSource {
			m.sourceWeather = &snap
		} else {
			m.destWeather = &snap
		}
		return m, nil

	case WeatherFailedMsg:
		// Isolated per slot: log and leave the slot unset. The other slot
		// and the itinerary display are unaffected.
		m.log.Warn("weather fetch failed", "slot", msg.Slot.String(), "error", msg.Err)
		return m, nil

	case PlacesMsg:
		if msg.Version != m.version {
			return m, nil
		}
		m.places = msg.Results
		m.exploreOpen = false
		m.resultsOpen = true
		return m, nil

	case PlacesFailedMsg:
		// Leave the explore view as it was; the user can retry or dismiss.
		m.log.Warn("places lookup failed", "error", msg.Err)
		return m, nil

	case SavedMsg:
		m.saving = false
		m.status = msg.Message
		if m.status == "" {
			m.status = "Itinerary saved."
		}
		return m, nil

	case SaveFailedMsg:
		m.saving = false
		m.status = "Failed to save itinerary: " + msg.Err.Error()
		return m, nil

	case ExportedMsg:
		m.status = "Exported to " + msg.Path
		return m, nil

	case ExportFailedMsg:
		m.status = "Failed to export PDF: " + msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// setItinerary installs a new generation result: the state moves to Loaded,
// the version advances, and all enrichment state from the previous itinerary
// is reset before the new weather fetches are dispatched.
func (m Model) setItinerary(it domain.Itinerary) (tea.Model, tea.Cmd) {
	m.state = StateLoaded
	m.itin = it
	m.version++
	m.sourceWeather = nil
	m.destWeather = nil
	m.places = nil
	m.exploreOpen = false
	m.resultsOpen = false
	m.selectedDay = 0
	m.status = "Itinerary generated."
	if m.ready {
		m.viewport.SetContent(renderItinerary(it))
		m.viewport.GotoTop()
	}
	return m, enrichCmds(m.gw, it, m.version)
}

// generateFailed surfaces the failure and settles the state: back to Empty
// when nothing was displayed, back to Loaded when a previous itinerary was
// still on screen (a failed re-generation never blanks the display).
func (m Model) generateFailed(err error) (tea.Model, tea.Cmd) {
	if m.version > 0 {
		m.state = StateLoaded
	} else {
		m.state = StateEmpty
	}
	if re, ok := domain.AsRemote(err); ok {
		m.status = re.Message
	} else if errors.Is(err, domain.ErrNetwork) {
		m.status = "Failed to generate itinerary. Please try again."
	} else {
		m.status = err.Error()
	}
	m.log.Error("itinerary generation failed", "error", err)
	return m, nil
}

// handleKey routes keystrokes. Most keys only mean something in StateLoaded.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.resultsOpen {
		switch key.String() {
		case "esc", "q":
			// Dismissing the results view discards its results.
			m.resultsOpen = false
			m.places = nil
		}
		return m, nil
	}

	if m.exploreOpen {
		switch key.String() {
		case "esc", "q":
			m.exploreOpen = false
		case "left", "shift+tab":
			m.categoryIdx = (m.categoryIdx + len(exploreCategories) - 1) % len(exploreCategories)
		case "right", "tab":
			m.categoryIdx = (m.categoryIdx + 1) % len(exploreCategories)
		case "enter":
			location := m.itin.DestinationName()
			if location == "" {
				location = m.itin.Source
			}
			return m, explorePlacesCmd(m.gw, location, exploreCategories[m.categoryIdx], m.version)
		}
		return m, nil
	}

	if key.String() == "q" {
		return m, tea.Quit
	}

	if m.state != StateLoaded {
		return m, nil
	}

	switch key.String() {
	case "s":
		return m.triggerSave()
	case "x":
		return m, exportCmd(m.gw, m.itin)
	case "r":
		m.state = StateLoading
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, generateCmd(m.builder, m.input))
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		day := int(key.String()[0] - '0')
		if day <= len(m.itin.Days.Days) {
			m.selectedDay = day
			m.exploreOpen = true
		}
		return m, nil
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(key)
		return m, cmd
	}

	return m, nil
}

// triggerSave starts a save unless one is already in flight or there is no
// identity to save under. The saving flag is the re-entrancy guard: a second
// press while in flight is ignored.
func (m Model) triggerSave() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	if m.email == "" {
		m.status = "Sign in to save itineraries."
		return m, nil
	}
	m.saving = true
	m.status = "Saving..."
	return m, tea.Batch(m.spinner.Tick, saveCmd(m.gw, m.email, m.itin))
}
