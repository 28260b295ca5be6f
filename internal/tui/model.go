package tui

import (
	"log/slog"

	"github.com/Mr-Dark-debug/augur/internal/prediction"

	tea "github.com/charmbracelet/bubbletea"
)

// QuitKey ends the session.
const QuitKey = "q"

// Config holds the App's tunables.
type Config struct {
	// Dispatch selects where non-quit keys are routed.
	Dispatch KeyDispatch
}

// DefaultConfig returns the centralized-dispatch configuration.
func DefaultConfig() Config {
	return Config{Dispatch: DispatchCentral}
}

// ────────────────────────────────────────────────────────────
// App
// ────────────────────────────────────────────────────────────

// App is the root BubbleTea model. It owns the prediction collection,
// the focus and the three panels; panels only ever see a StateView.
type App struct {
	state  State
	config Config
	logger *slog.Logger

	list    Component
	graph   Component
	details Component

	width  int
	height int
}

// NewApp builds the dashboard over predictions with focus selected and
// runs every component's Init. An Init failure is returned as an
// *InitError and the App must not be started.
func NewApp(cfg Config, predictions []prediction.Prediction, focus *prediction.ID, logger *slog.Logger) (App, error) {
	return newApp(cfg, NewState(predictions, focus), logger,
		NewPredictionList(), NewGraph(), NewPredictionDetails())
}

func newApp(cfg Config, state State, logger *slog.Logger, list, graph, details Component) (App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := App{
		state:   state,
		config:  cfg,
		logger:  logger,
		list:    list,
		graph:   graph,
		details: details,
	}
	for _, c := range a.components() {
		if err := c.Init(); err != nil {
			return App{}, &InitError{Component: c.Name(), Err: err}
		}
	}
	return a, nil
}

// components returns the panels in draw order.
func (a App) components() []Component {
	return []Component{a.list, a.graph, a.details}
}

// State returns the current application state.
func (a App) State() State { return a.state }

// ────────────────────────────────────────────────────────────
// Init / Update
// ────────────────────────────────────────────────────────────

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

// handleKey routes a key press according to the screen mode. BubbleTea
// delivers presses only, so there are no release or repeat events to
// filter out here.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state.mode {
	case ScreenModePredictionList:
		if isQuitKey(msg) {
			a.state.run = Exiting
			a.logger.Info("quit requested", "mode", a.state.mode.String())
			return a, tea.Quit
		}
	}

	if a.config.Dispatch == DispatchComponents {
		for _, c := range a.components() {
			c.HandleKey(msg)
		}
	}
	return a, nil
}

// isQuitKey reports whether msg contains the quit key. Runes typed in
// quick succession arrive as one KeyRunes message, so each rune is
// checked rather than the message as a whole.
func isQuitKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste {
		return false
	}
	for _, r := range msg.Runes {
		if string(r) == QuitKey {
			return true
		}
	}
	return false
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (a App) View() string {
	if a.state.run == Exiting {
		return ""
	}
	if a.width == 0 {
		return "Initializing..."
	}
	return a.Frame(a.width, a.height)
}

// Frame lays out a width×height surface and draws every panel into its
// region. A panel that fails to draw is logged and left blank; the
// others still render.
func (a App) Frame(width, height int) string {
	surface := NewSurface(width, height)
	regions := Layout(width, height)

	panels := []struct {
		component Component
		region    Rect
	}{
		{a.list, regions.List},
		{a.graph, regions.Graph},
		{a.details, regions.Details},
	}
	for _, p := range panels {
		if err := p.component.Draw(surface, p.region, a.state); err != nil {
			rerr := &RenderError{Component: p.component.Name(), Err: err}
			a.logger.Warn("panel render failed", "component", rerr.Component, "error", rerr.Err)
		}
	}
	return surface.Render()
}
