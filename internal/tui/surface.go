package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ErrOutOfBounds is returned when a component paints a region that
// does not fit on the surface.
var ErrOutOfBounds = errors.New("region outside surface")

// block is one painted region, normalized to exactly Width×Height cells.
type block struct {
	rect  Rect
	lines []string
}

// Surface is the drawing target for one frame. Components paint
// rendered strings into rectangular regions; each paint is clipped and
// padded to its region so nothing spills into a neighbour.
type Surface struct {
	width, height int
	blocks        []block
}

// NewSurface returns an empty surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{width: maxInt(width, 0), height: maxInt(height, 0)}
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Bounds returns the rectangle covering the whole surface.
func (s *Surface) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Paint places content in r. Lines beyond r.Height and cells beyond
// r.Width are dropped; short content is padded with blanks. A paint
// that overlaps an earlier one replaces it.
func (s *Surface) Paint(r Rect, content string) error {
	if r.X < 0 || r.Y < 0 || r.X+r.Width > s.width || r.Y+r.Height > s.height {
		return fmt.Errorf("painting %dx%d at (%d,%d) on %dx%d: %w",
			r.Width, r.Height, r.X, r.Y, s.width, s.height, ErrOutOfBounds)
	}
	if r.Empty() {
		return nil
	}

	kept := s.blocks[:0]
	for _, b := range s.blocks {
		if !overlaps(b.rect, r) {
			kept = append(kept, b)
		}
	}
	s.blocks = append(kept, block{rect: r, lines: fit(content, r.Width, r.Height)})
	return nil
}

// Lines returns the composed frame, one string per terminal row.
func (s *Surface) Lines() []string {
	rows := make([]string, s.height)
	for y := range rows {
		var onRow []block
		for _, b := range s.blocks {
			if y >= b.rect.Y && y < b.rect.Y+b.rect.Height {
				onRow = append(onRow, b)
			}
		}
		sort.Slice(onRow, func(i, j int) bool { return onRow[i].rect.X < onRow[j].rect.X })

		var sb strings.Builder
		x := 0
		for _, b := range onRow {
			sb.WriteString(strings.Repeat(" ", b.rect.X-x))
			sb.WriteString(b.lines[y-b.rect.Y])
			x = b.rect.X + b.rect.Width
		}
		sb.WriteString(strings.Repeat(" ", s.width-x))
		rows[y] = sb.String()
	}
	return rows
}

// Render returns the composed frame as a single string.
func (s *Surface) Render() string {
	return strings.Join(s.Lines(), "\n")
}

// fit normalizes content to exactly height lines of width cells.
func fit(content string, width, height int) []string {
	src := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(src) {
			line = ansi.Truncate(src[i], width, "")
		}
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}
