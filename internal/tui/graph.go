package tui

import "github.com/charmbracelet/lipgloss"

const graphLabel = "Graph area"

// Graph reserves the region where certainty trends will be charted.
// It reads nothing from the state yet.
type Graph struct {
	Base
}

// NewGraph returns the graph placeholder panel.
func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) Name() string { return "graph" }

// Draw paints a bordered box with the placeholder label centered in it.
func (g *Graph) Draw(s *Surface, region Rect, _ StateView) error {
	inner := region.Inner()
	label := lipgloss.Place(inner.Width, inner.Height, lipgloss.Center, lipgloss.Center,
		graphLabelStyle.Render(graphLabel))
	return s.Paint(region, renderPanel(region, label))
}
