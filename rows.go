package zedit

import (
	"github.com/chewxy/math32"
	"github.com/rdleal/intervalst/interval"
)

// rowIndex finds the line whose vertical band (bottom-height, bottom] contains a y coordinate.
// Bands are stored as closed intervals starting one float step above the top edge, so rows that
// touch never share a point.
type rowIndex struct {
	lookup *interval.MultiValueSearchTree[*Line, float32]
	height float32
	stale  bool
}

func cmpFloat32(a, b float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func newRowIndex() *rowIndex {
	return &rowIndex{stale: true}
}

// invalidate marks the index for rebuilding on the next lookup.
func (x *rowIndex) invalidate() {
	x.stale = true
}

func (x *rowIndex) rebuild(r Renderer, lines []*Line) {
	x.lookup = interval.NewMultiValueSearchTreeWithOptions[*Line, float32](cmpFloat32, interval.TreeWithIntervalPoint())
	x.height = RowHeight(r)
	for _, line := range lines {
		h := line.Height(r)
		if h <= 0 {
			continue
		}
		top := math32.Nextafter(line.bottom-h, math32.Inf(1))
		if top > line.bottom {
			continue
		}
		x.lookup.Insert(top, line.bottom, line)
	}
	x.stale = false
}

// lineAt returns the line whose band contains y. The index is rebuilt first if the rows changed
// or the font height differs from the one it was built with.
func (x *rowIndex) lineAt(r Renderer, lines []*Line, y float32) (*Line, bool) {
	if x.stale || x.height != RowHeight(r) {
		x.rebuild(r, lines)
	}
	found, ok := x.lookup.AnyIntersection(y, y)
	if !ok {
		return nil, false
	}
	for _, line := range found {
		if y > line.bottom-line.Height(r) && y <= line.bottom {
			return line, true
		}
	}
	return nil, false
}
