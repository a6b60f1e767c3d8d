package item

import "github.com/dhdaines-go/playout/geom"

// NonTextKind distinguishes the graphic primitives a page can carry
// alongside text.
type NonTextKind int

const (
	NonTextPolyline NonTextKind = iota
	NonTextRect
	NonTextImage
)

// NonText is a non-text graphic item: a line, rectangle, polygon, or
// image. It passes through the layout pipeline unchanged and is
// excluded from clustering.
type NonText struct {
	Box  geom.Rect
	Kind NonTextKind
}

// NewNonText builds a NonText of the given kind.
func NewNonText(box geom.Rect, kind NonTextKind) *NonText {
	return &NonText{Box: box, Kind: kind}
}

// BBox returns the item's bounding box.
func (n *NonText) BBox() geom.Rect {
	return n.Box
}
