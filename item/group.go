package item

import "github.com/dhdaines-go/playout/geom"

// TreeItem is implemented by TextBox and TextGroup: the two node kinds
// that make up the binary reading-order tree the box tree builder
// constructs.
type TreeItem interface {
	Boxed
	Area() float64
	verticalFlavored() bool
}

// Area implements TreeItem for TextBox.
func (b *TextBox) Area() float64 {
	return b.BBox().Area()
}

func (b *TextBox) verticalFlavored() bool {
	return b.Orientation == Vertical
}

// TextGroup is an internal node of the reading-order tree: exactly two
// children, unioned into one bbox, ordered by an arrangement direction.
type TextGroup struct {
	bboxAccum
	Arrangement Arrangement
	Left, Right TreeItem
}

// NewTextGroup builds a group over exactly two children, in the given
// arrangement direction, with their bbox already unioned.
func NewTextGroup(arrangement Arrangement, left, right TreeItem) *TextGroup {
	g := &TextGroup{bboxAccum: newBBoxAccum(), Arrangement: arrangement, Left: left, Right: right}
	g.absorb(left.BBox())
	g.absorb(right.BBox())
	return g
}

// Area implements TreeItem for TextGroup.
func (g *TextGroup) Area() float64 {
	return g.BBox().Area()
}

func (g *TextGroup) verticalFlavored() bool {
	return g.Arrangement == ArrangeTBRL
}

// NewGroupLRTB builds a left-to-right, top-to-bottom group and finishes
// it (orders its two children top-left first).
func NewGroupLRTB(left, right TreeItem) *TextGroup {
	return NewTextGroup(ArrangeLRTB, left, right).Finish()
}

// NewGroupTBRL builds a top-to-bottom, right-to-left group and finishes
// it (orders its two children top-right first).
func NewGroupTBRL(left, right TreeItem) *TextGroup {
	return NewTextGroup(ArrangeTBRL, left, right).Finish()
}

// Finish orders Left/Right by the arrangement's sort key. The sort is
// stable, so if both children key equal, insertion order (Left before
// Right) is preserved.
func (g *TextGroup) Finish() *TextGroup {
	if g.Sealed() {
		return g
	}
	children := []TreeItem{g.Left, g.Right}
	var key func(geom.Rect) float64
	if g.Arrangement == ArrangeLRTB {
		key = func(r geom.Rect) float64 { return (r.X0 + r.X1) - (r.Y0 + r.Y1) }
	} else {
		key = func(r geom.Rect) float64 { return -(r.X0 + r.X1) - (r.Y0 + r.Y1) }
	}
	csortTreeItems(children, key)
	g.Left, g.Right = children[0], children[1]
	g.seal()
	return g
}

// VerticalFlavored reports whether this group's left-operand flavor for
// the next clustering step is vertical: a VerticalBox or a TBRL group.
func VerticalFlavored(t TreeItem) bool {
	return t.verticalFlavored()
}

func csortTreeItems(items []TreeItem, key func(geom.Rect) float64) {
	csortStable(items, func(t TreeItem) float64 { return key(t.BBox()) })
}
