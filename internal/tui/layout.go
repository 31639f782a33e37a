package tui

import (
	"github.com/garrettladley/lumi/internal/geometry"
	ringcomp "github.com/garrettladley/lumi/internal/tui/components/ring"
)

const (
	footerHeight   = 1
	sidePanelWidth = 24
	// maxSurface caps the ring at 80x40 cells on large terminals.
	maxSurface = 160
)

// layout positions the ring inside the viewport. The ring region is
// everything left of the side panel and above the footer; the ring is centered
// in it at a whole-cell offset so mouse cells map back to surface points.
type layout struct {
	regionCols int
	regionRows int
	cols       int
	rows       int
	originX    int
	originY    int
	size       int
}

func computeLayout(width, height int) layout {
	l := layout{
		regionCols: max(width-sidePanelWidth, 0),
		regionRows: max(height-footerHeight, 0),
	}
	l.size = min(ringcomp.SurfaceSize(l.regionCols, l.regionRows), maxSurface)
	if l.size <= 0 {
		return layout{regionCols: l.regionCols, regionRows: l.regionRows}
	}
	l.cols, l.rows = ringcomp.CellsFor(l.size)
	l.originX = (l.regionCols - l.cols) / 2
	l.originY = (l.regionRows - l.rows) / 2
	return l
}

// surfacePoint maps a terminal cell to a point on the ring surface. ok is
// false when the cell is outside the ring component.
func (l layout) surfacePoint(x, y int) (geometry.Point, bool) {
	col, row := x-l.originX, y-l.originY
	if col < 0 || row < 0 || col >= l.cols || row >= l.rows {
		return geometry.Point{}, false
	}
	return ringcomp.DotCenter(col, row), true
}

func (m *Model) relayout() {
	m.layout = computeLayout(m.viewportWidth, m.viewportHeight)
	m.controller.Resize(float64(m.layout.size))
}
