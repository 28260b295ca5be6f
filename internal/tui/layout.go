package tui

// Gutter is the number of blank columns between the left and right halves.
const Gutter = 1

// Rect is a rectangular area of the terminal in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner returns r shrunk by one cell on every side, the area inside a border.
func (r Rect) Inner() Rect {
	return Rect{
		X:      r.X + 1,
		Y:      r.Y + 1,
		Width:  maxInt(r.Width-2, 0),
		Height: maxInt(r.Height-2, 0),
	}
}

// Regions is the partition of one frame among the three panels.
type Regions struct {
	List    Rect
	Graph   Rect
	Details Rect
}

// Layout splits a width×height terminal into two halves separated by
// Gutter, then splits the right half into graph (top) and details
// (bottom). It holds no state, so every frame derives its regions from
// the current terminal size.
func Layout(width, height int) Regions {
	width = maxInt(width, 0)
	height = maxInt(height, 0)

	avail := maxInt(width-Gutter, 0)
	leftWidth := avail / 2
	rightWidth := avail - leftWidth
	rightX := minInt(leftWidth+Gutter, width)

	topHeight := height / 2
	bottomHeight := height - topHeight

	return Regions{
		List:    Rect{X: 0, Y: 0, Width: leftWidth, Height: height},
		Graph:   Rect{X: rightX, Y: 0, Width: rightWidth, Height: topHeight},
		Details: Rect{X: rightX, Y: topHeight, Width: rightWidth, Height: bottomHeight},
	}
}
