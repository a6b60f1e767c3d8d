package item

import "github.com/dhdaines-go/playout/geom"

// PageItem is anything that can live directly on a Page or inside a
// Figure: glyphs, non-text graphics, figures, and (after analysis)
// text boxes.
type PageItem interface {
	Boxed
}

// Page holds every top-level item on one page, plus the reading-order
// tree produced by analysis, once run.
type Page struct {
	ID       int
	Rotation int
	Box      geom.Rect
	Items    []PageItem

	// Layout is the root of the reading-order tree after analysis: a
	// *TextGroup, or the sole *TextBox when there is exactly one, or
	// nil if the page has no glyphs or was never analyzed.
	Layout TreeItem
}

// NewPage builds an empty page with the given items.
func NewPage(id int, rotation int, box geom.Rect, items []PageItem) *Page {
	return &Page{ID: id, Rotation: rotation, Box: box, Items: items}
}

// BBox returns the page's bounding box.
func (pg *Page) BBox() geom.Rect {
	return pg.Box
}
