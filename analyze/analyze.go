// Package analyze implements the orchestration entry points: the
// finish step that runs the line aggregator, box aggregator, and box
// tree builder in sequence, assigns reading-order indices, and
// reorders a page's or figure's items accordingly.
package analyze

import (
	"github.com/dhdaines-go/playout/boxagg"
	"github.com/dhdaines-go/playout/boxtree"
	"github.com/dhdaines-go/playout/item"
	"github.com/dhdaines-go/playout/laparams"
	"github.com/dhdaines-go/playout/lineagg"
)

// Page runs the full layout pipeline over a page's items and sets its
// Layout field. A nil params suppresses analysis entirely, leaving the
// page untouched. A page with no glyphs is also left untouched.
func Page(pg *item.Page, params *laparams.LAParams) {
	if params == nil {
		return
	}
	glyphs, rest := partition(pg.Items)
	if len(glyphs) == 0 {
		return
	}
	boxes, root := groupAndOrder(glyphs, params)
	pg.Items = reorderItems(boxes, rest)
	pg.Layout = root
}

// Figure runs the same pipeline over a figure's items, but only when
// params.AllTexts() is set; otherwise the figure's children are left
// untouched, exactly like a page's non-text items.
func Figure(fig *item.Figure, params *laparams.LAParams) {
	if params == nil || !params.AllTexts() {
		return
	}
	glyphs, rest := partition(fig.Items)
	if len(glyphs) == 0 {
		return
	}
	boxes, root := groupAndOrder(glyphs, params)
	fig.Items = reorderItems(boxes, rest)
	fig.Layout = root
}

// groupAndOrder runs the line aggregator, box aggregator, and box tree
// builder over glyphs, then assigns dense reading indices 0..N-1 to
// the resulting boxes by a left-child-first, right-child-last walk of
// the tree, returning the boxes in that reading order alongside the
// tree root.
func groupAndOrder(glyphs []item.Glyph, params *laparams.LAParams) ([]*item.TextBox, item.TreeItem) {
	lines := lineagg.Lines(glyphs, params)
	boxes := boxagg.Boxes(lines, params)
	root := boxtree.Build(boxes)
	assignIndex(root, 0)

	ordered := make([]*item.TextBox, len(boxes))
	copy(ordered, boxes)
	sortByIndex(ordered)
	return ordered, root
}

// assignIndex walks the tree left-child-first, right-child-last,
// stamping each box's Index with the next dense integer starting at i,
// and returns the next unused index.
func assignIndex(t item.TreeItem, i int) int {
	switch v := t.(type) {
	case *item.TextBox:
		v.Index = i
		return i + 1
	case *item.TextGroup:
		i = assignIndex(v.Left, i)
		i = assignIndex(v.Right, i)
		return i
	}
	return i
}

func sortByIndex(boxes []*item.TextBox) {
	for i := 1; i < len(boxes); i++ {
		for j := i; j > 0 && boxes[j-1].Index > boxes[j].Index; j-- {
			boxes[j-1], boxes[j] = boxes[j], boxes[j-1]
		}
	}
}

// partition splits a page's or figure's items into glyphs and every
// other item, preserving relative order within each group.
func partition(items []item.PageItem) ([]item.Glyph, []item.PageItem) {
	var glyphs []item.Glyph
	var rest []item.PageItem
	for _, it := range items {
		if g, ok := it.(*item.Glyph); ok {
			glyphs = append(glyphs, *g)
		} else {
			rest = append(rest, it)
		}
	}
	return glyphs, rest
}

// reorderItems rebuilds the item slice as boxes in reading-order index
// order, followed by non-text items in their original order.
func reorderItems(boxes []*item.TextBox, rest []item.PageItem) []item.PageItem {
	out := make([]item.PageItem, 0, len(boxes)+len(rest))
	for _, b := range boxes {
		out = append(out, b)
	}
	out = append(out, rest...)
	return out
}
