package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	listHeader     = "Prediction list"
	listRowPadding = 2
)

// PredictionList renders the collection as a numbered list and
// highlights the focused prediction.
type PredictionList struct {
	Base
}

// NewPredictionList returns the list panel.
func NewPredictionList() *PredictionList {
	return &PredictionList{}
}

func (l *PredictionList) Name() string { return "prediction-list" }

// listRow is one entry of the list before styling.
type listRow struct {
	text    string
	focused bool
}

// rows builds "{n}- {title}" entries in collection order.
func (l *PredictionList) rows(state StateView) []listRow {
	predictions := state.Predictions()
	rows := make([]listRow, 0, len(predictions))
	for i, p := range predictions {
		rows = append(rows, listRow{
			text:    fmt.Sprintf("%d- %s", i+1, p.Title()),
			focused: isFocused(state, p.ID()),
		})
	}
	return rows
}

// Draw paints a header row, then one row per prediction until the
// panel runs out of height. Rows that do not fit are not drawn.
func (l *PredictionList) Draw(s *Surface, region Rect, state StateView) error {
	inner := region.Inner()

	lines := []string{
		panelTitleStyle.Width(inner.Width).Align(lipgloss.Center).Render(truncate(listHeader, inner.Width)),
	}
	textWidth := inner.Width - 2*listRowPadding
	for _, row := range l.rows(state) {
		if len(lines) >= inner.Height {
			break
		}
		style := listRowStyle
		if row.focused {
			style = listRowFocusedStyle
		}
		lines = append(lines, strings.Repeat(" ", listRowPadding)+style.Render(truncate(row.text, textWidth)))
	}
	if len(lines) > inner.Height {
		lines = lines[:inner.Height]
	}

	return s.Paint(region, renderPanel(region, strings.Join(lines, "\n")))
}

// renderPanel wraps content in a bordered box filling region. Lines
// wider than the box are cut rather than wrapped.
func renderPanel(region Rect, content string) string {
	inner := region.Inner()
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, inner.Width, "")
	}
	return panelStyle.Width(inner.Width).Height(inner.Height).Render(strings.Join(lines, "\n"))
}
