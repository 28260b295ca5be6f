// Package tui implements the augur prediction dashboard.
//
// The App is the root BubbleTea model. Every frame it partitions the
// terminal into three regions and asks each panel to paint its region
// of a Surface from a read-only view of the application state.
//
// Component architecture:
//
//	model.go      App: state transitions, key dispatch, frame assembly
//	state.go      State, ScreenMode, RunState and the StateView contract
//	component.go  Component contract, no-op Base, render/init errors
//	layout.go     per-frame region math (list | graph / details)
//	surface.go    region-clipping drawing surface
//	list.go       numbered prediction list with focus highlight
//	details.go    field view of the focused prediction
//	graph.go      placeholder analytics panel
//	theme.go      centralized colors and styles
//	helpers.go    truncation and small math helpers
package tui
