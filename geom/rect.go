// Package geom implements the bounding-box arithmetic that every
// clustering decision in this module is built on: overlap tests,
// separation distances, and unions over axis-aligned rectangles in
// page space.
package geom

import (
	"math"

	"github.com/dhdaines-go/playout/base"
)

// Rect is an axis-aligned bounding box in page-space coordinates, with
// X0 <= X1 and Y0 <= Y1. The zero Rect is not a valid box; use Empty()
// for the additive identity of Union.
type Rect struct {
	X0, Y0, X1, Y1 base.Scalar
}

// Empty returns the additive identity for Union: the first Union with any
// real Rect yields that Rect unchanged.
func Empty() Rect {
	return Rect{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
}

// IsEmpty reports whether r is still the unset Empty() value.
func (r Rect) IsEmpty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// Width returns x1 - x0.
func (r Rect) Width() base.Scalar {
	return r.X1 - r.X0
}

// Height returns y1 - y0.
func (r Rect) Height() base.Scalar {
	return r.Y1 - r.Y0
}

// Area returns width * height, or 0 for an empty rect.
func (r Rect) Area() base.Scalar {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// HOverlaps reports whether r and o overlap along x.
func (r Rect) HOverlaps(o Rect) bool {
	return o.X0 <= r.X1 && r.X0 <= o.X1
}

// VOverlaps reports whether r and o overlap along y.
func (r Rect) VOverlaps(o Rect) bool {
	return o.Y0 <= r.Y1 && r.Y0 <= o.Y1
}

// HOverlapWidth returns min(|r.X0-o.X1|, |r.X1-o.X0|) when r and o
// overlap horizontally, or 0 if they don't. This equals the overlap
// width for partial overlaps; when one box contains the other along x
// it is larger than the inner box's width.
func (r Rect) HOverlapWidth(o Rect) base.Scalar {
	if !r.HOverlaps(o) {
		return 0
	}
	return minScalar(absScalar(r.X0-o.X1), absScalar(r.X1-o.X0))
}

// VOverlapHeight returns min(|r.Y0-o.Y1|, |r.Y1-o.Y0|) when r and o
// overlap vertically, or 0 if they don't. This equals the overlap height
// for partial overlaps; when one box contains the other along y it is
// larger than the inner box's height.
func (r Rect) VOverlapHeight(o Rect) base.Scalar {
	if !r.VOverlaps(o) {
		return 0
	}
	return minScalar(absScalar(r.Y0-o.Y1), absScalar(r.Y1-o.Y0))
}

// HDistance returns the horizontal separation between r and o: 0 when
// they overlap horizontally, otherwise the gap between their nearest
// edges.
func (r Rect) HDistance(o Rect) base.Scalar {
	if r.HOverlaps(o) {
		return 0
	}
	return minScalar(absScalar(r.X0-o.X1), absScalar(r.X1-o.X0))
}

// VDistance returns the vertical separation between r and o: 0 when they
// overlap vertically, otherwise the gap between their nearest edges.
func (r Rect) VDistance(o Rect) base.Scalar {
	if r.VOverlaps(o) {
		return 0
	}
	return minScalar(absScalar(r.Y0-o.Y1), absScalar(r.Y1-o.Y0))
}

// Union returns the componentwise min/max of a and b: the tightest Rect
// containing both.
func Union(a, b Rect) Rect {
	return Rect{
		X0: minScalar(a.X0, b.X0),
		Y0: minScalar(a.Y0, b.Y0),
		X1: maxScalar(a.X1, b.X1),
		Y1: maxScalar(a.Y1, b.Y1),
	}
}

// UnionAreaDistance is the signed clustering distance of §4.6: the area
// of the tightest rect enclosing both boxes, minus the areas of each box.
// It is negative when the boxes overlap substantially.
func UnionAreaDistance(a, b Rect) base.Scalar {
	return Union(a, b).Area() - a.Area() - b.Area()
}

func minScalar(a, b base.Scalar) base.Scalar {
	if a < b {
		return a
	}
	return b
}

func maxScalar(a, b base.Scalar) base.Scalar {
	if a > b {
		return a
	}
	return b
}

func absScalar(v base.Scalar) base.Scalar {
	if v < 0 {
		return -v
	}
	return v
}
