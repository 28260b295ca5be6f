package tui

import (
	"slices"

	"github.com/Mr-Dark-debug/augur/internal/prediction"
)

// ScreenMode selects how key presses are interpreted.
type ScreenMode int

const (
	// ScreenModePredictionList is the three-panel dashboard.
	ScreenModePredictionList ScreenMode = iota
)

func (m ScreenMode) String() string {
	switch m {
	case ScreenModePredictionList:
		return "prediction-list"
	default:
		return "unknown"
	}
}

// RunState is the loop's lifecycle state.
type RunState int

const (
	Running RunState = iota
	Exiting
)

func (s RunState) String() string {
	if s == Exiting {
		return "exiting"
	}
	return "running"
}

// StateView is the read-only face of the application state handed to
// components for the duration of one Draw call.
type StateView interface {
	// Predictions returns the collection in display order. The slice
	// is a copy; changing it does not affect the App.
	Predictions() []prediction.Prediction
	// FocusedID returns the focused identifier, if one is set.
	FocusedID() (prediction.ID, bool)
	// Focused resolves the focused identifier against the collection.
	// A dangling identifier resolves to nothing.
	Focused() (prediction.Prediction, bool)
	// Mode returns the current screen mode.
	Mode() ScreenMode
}

// State is the application state owned by the App. Only the App's key
// dispatcher changes it.
type State struct {
	predictions []prediction.Prediction
	focusedID   prediction.ID
	hasFocus    bool
	mode        ScreenMode
	run         RunState
}

// NewState seeds a running state. A nil focus leaves nothing selected.
func NewState(predictions []prediction.Prediction, focus *prediction.ID) State {
	s := State{
		predictions: slices.Clone(predictions),
		mode:        ScreenModePredictionList,
		run:         Running,
	}
	if focus != nil {
		s.focusedID = *focus
		s.hasFocus = true
	}
	return s
}

func (s State) Predictions() []prediction.Prediction {
	return slices.Clone(s.predictions)
}

func (s State) FocusedID() (prediction.ID, bool) {
	return s.focusedID, s.hasFocus
}

func (s State) Focused() (prediction.Prediction, bool) {
	if !s.hasFocus {
		return prediction.Prediction{}, false
	}
	for _, p := range s.predictions {
		if p.ID() == s.focusedID {
			return p, true
		}
	}
	return prediction.Prediction{}, false
}

func (s State) Mode() ScreenMode { return s.mode }

// Run returns the lifecycle state.
func (s State) Run() RunState { return s.run }

// isFocused reports whether id is the focused identifier.
func isFocused(v StateView, id prediction.ID) bool {
	focused, ok := v.FocusedID()
	return ok && focused == id
}
