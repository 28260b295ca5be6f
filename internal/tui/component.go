package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a panel the App can draw polymorphically.
//
// Draw paints only inside region and must not keep state past the
// call; calling it twice with the same inputs paints the same output.
type Component interface {
	// Name identifies the component in logs and errors.
	Name() string
	// Init runs once before the first frame. An error aborts startup.
	Init() error
	// Draw renders the component into region of s.
	Draw(s *Surface, region Rect, state StateView) error
	// HandleKey receives key presses when the App dispatches per component.
	HandleKey(key tea.KeyMsg)
}

// Base supplies the optional hooks as no-ops. Embed it in components
// that need neither setup nor local key handling.
type Base struct{}

func (Base) Init() error          { return nil }
func (Base) HandleKey(tea.KeyMsg) {}

// KeyDispatch selects where key presses are routed.
type KeyDispatch int

const (
	// DispatchCentral handles every key in the App.
	DispatchCentral KeyDispatch = iota
	// DispatchComponents lets the App handle the quit key, then
	// forwards every other key to each component's HandleKey.
	DispatchComponents
)

// RenderError reports a component that failed to paint. It never
// stops the frame.
type RenderError struct {
	Component string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Component, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// InitError reports a component whose Init failed. It is fatal to startup.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
