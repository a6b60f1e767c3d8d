// Package plane implements a bbox-keyed spatial index: a fixed grid of
// buckets built once and queried by widened region, used by the box
// aggregator to find a line's neighbors without a linear scan of every
// line on the page.
package plane

import "github.com/dhdaines-go/playout/geom"

// Item is anything the plane can index: something with a bbox and an
// identity comparable across lookups.
type Item interface {
	comparable
	BBox() geom.Rect
}

const gridSize = 50

// Plane is a grid-bucketed spatial index over a fixed set of items. It
// is built once via Insert calls followed by Finish, then queried
// read-only any number of times via Find.
type Plane[T Item] struct {
	bbox    geom.Rect
	items   []T
	cellW   float64
	cellH   float64
	grid    map[[2]int][]T
	sealed  bool
}

// New starts an empty plane sized to bound, the region every inserted
// item is expected to fall within (typically the page's bbox).
func New[T Item](bound geom.Rect) *Plane[T] {
	return &Plane[T]{
		bbox:  bound,
		cellW: bound.Width() / gridSize,
		cellH: bound.Height() / gridSize,
		grid:  make(map[[2]int][]T),
	}
}

// Insert adds an item to the plane. It is a no-op after Finish.
func (p *Plane[T]) Insert(item T) {
	if p.sealed {
		return
	}
	p.items = append(p.items, item)
}

// Finish builds the grid buckets from every inserted item. Idempotent.
func (p *Plane[T]) Finish() {
	if p.sealed {
		return
	}
	for _, item := range p.items {
		for _, cell := range p.cellsFor(item.BBox()) {
			p.grid[cell] = append(p.grid[cell], item)
		}
	}
	p.sealed = true
}

// Find returns every inserted item whose bbox intersects region,
// without duplicates. An item whose own bbox is passed as region is
// always included among the results, since a bbox always intersects
// itself.
func (p *Plane[T]) Find(region geom.Rect) []T {
	seen := make(map[T]bool)
	var out []T
	for _, cell := range p.cellsFor(region) {
		for _, item := range p.grid[cell] {
			if seen[item] {
				continue
			}
			if item.BBox().HOverlaps(region) && item.BBox().VOverlaps(region) {
				seen[item] = true
				out = append(out, item)
			}
		}
	}
	return out
}

// cellsFor returns every grid cell a rect touches, clamped to the
// plane's bound so a region extending past the page edge still maps
// to valid cells.
func (p *Plane[T]) cellsFor(r geom.Rect) [][2]int {
	if p.cellW <= 0 || p.cellH <= 0 {
		return [][2]int{{0, 0}}
	}
	x0 := p.cellIndex(r.X0-p.bbox.X0, p.cellW)
	x1 := p.cellIndex(r.X1-p.bbox.X0, p.cellW)
	y0 := p.cellIndex(r.Y0-p.bbox.Y0, p.cellH)
	y1 := p.cellIndex(r.Y1-p.bbox.Y0, p.cellH)
	var cells [][2]int
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			cells = append(cells, [2]int{x, y})
		}
	}
	return cells
}

func (p *Plane[T]) cellIndex(offset, size float64) int {
	i := int(offset / size)
	if i < 0 {
		return 0
	}
	if i >= gridSize {
		return gridSize - 1
	}
	return i
}
