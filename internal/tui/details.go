package tui

import (
	"strconv"
	"strings"

	"github.com/Mr-Dark-debug/augur/internal/prediction"
	"github.com/Mr-Dark-debug/augur/pkg/timeutil"
)

// PredictionDetails renders the fields of the focused prediction.
type PredictionDetails struct {
	Base
}

// NewPredictionDetails returns the details panel.
func NewPredictionDetails() *PredictionDetails {
	return &PredictionDetails{}
}

func (d *PredictionDetails) Name() string { return "prediction-details" }

// detailField is one labelled row of the panel.
type detailField struct {
	label string
	value string
}

// fields resolves the focus against the live collection on every call.
// With nothing focused every value is "None".
func (d *PredictionDetails) fields(state StateView) []detailField {
	p, ok := state.Focused()
	if !ok {
		return []detailField{
			{"Title", timeutil.None},
			{"Description", timeutil.None},
			{"Certainty", timeutil.None},
			{"Created", timeutil.None},
			{"Due", timeutil.None},
		}
	}
	return []detailField{
		{"Title", p.Title()},
		{"Description", p.Description()},
		{"Certainty", formatCertainty(p.Certainty())},
		{"Created", timeutil.FormatDate(p.Created())},
		{"Due", formatDue(p)},
	}
}

// Draw stacks one row per field inside a bordered box; the box's
// remaining height is left blank.
func (d *PredictionDetails) Draw(s *Surface, region Rect, state StateView) error {
	inner := region.Inner()

	var lines []string
	for _, f := range d.fields(state) {
		if len(lines) >= inner.Height {
			break
		}
		label := detailLabelStyle.Render(f.label + ": ")
		value := truncate(f.value, inner.Width-len(f.label)-2)
		lines = append(lines, label+detailValueStyle.Render(value))
	}

	return s.Paint(region, renderPanel(region, strings.Join(lines, "\n")))
}

func formatCertainty(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func formatDue(p prediction.Prediction) string {
	due, ok := p.Due()
	return timeutil.FormatOptionalDate(due, ok)
}
