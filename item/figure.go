package item

import (
	"github.com/dhdaines-go/playout/geom"
	"github.com/dhdaines-go/playout/laparams"
)

// Matrix is a PDF-style 2D affine transform [a b c d e f], applied to a
// figure's nested coordinate space before it lands in page space.
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Figure is a nested content stream (an XObject form) with its own
// transform and items. It is only recursed into by analysis when the
// params passed to analyze.Figure have AllTexts() set (the Params field
// itself is not consulted); otherwise its children pass through
// untouched, exactly like a Page's non-text items.
type Figure struct {
	Box       geom.Rect
	Transform Matrix
	Items     []PageItem
	Params    *laparams.LAParams

	// Layout is populated only when AllTexts recursion ran.
	Layout TreeItem
}

// NewFigure builds a figure. params may be nil, meaning "use the
// enclosing page's params" is the caller's responsibility to resolve
// before calling analyze.Figure.
func NewFigure(box geom.Rect, transform Matrix, items []PageItem, params *laparams.LAParams) *Figure {
	return &Figure{Box: box, Transform: transform, Items: items, Params: params}
}

// BBox returns the figure's bounding box.
func (f *Figure) BBox() geom.Rect {
	return f.Box
}
