package item

import "github.com/dhdaines-go/playout/geom"

// Boxed is implemented by every item that carries a real bounding box.
// Anon is the one item in this model that does not.
type Boxed interface {
	BBox() geom.Rect
}

// Child is implemented by anything a TextLine can hold: glyphs and the
// synthetic Anon whitespace/newline markers the line aggregator inserts.
type Child interface {
	TextOf() string
}

// bboxAccum is the shared expandable-bbox accumulator every container in
// this package embeds. Its zero value is not valid; use newBBoxAccum.
type bboxAccum struct {
	bbox   geom.Rect
	sealed bool
}

func newBBoxAccum() bboxAccum {
	return bboxAccum{bbox: geom.Empty()}
}

// absorb widens the accumulated bbox to include b. It is a no-op once
// the container has been sealed by Finish.
func (a *bboxAccum) absorb(b geom.Rect) {
	if a.sealed {
		return
	}
	a.bbox = geom.Union(a.bbox, b)
}

// BBox returns the union of every bbox absorbed so far.
func (a *bboxAccum) BBox() geom.Rect {
	return a.bbox
}

// Width returns the accumulated bbox's width.
func (a *bboxAccum) Width() float64 {
	return a.bbox.Width()
}

// Height returns the accumulated bbox's height.
func (a *bboxAccum) Height() float64 {
	return a.bbox.Height()
}

func (a *bboxAccum) seal() {
	a.sealed = true
}

// Sealed reports whether Finish has already run.
func (a *bboxAccum) Sealed() bool {
	return a.sealed
}
