package analyze

import (
	"testing"

	"github.com/dhdaines-go/playout/geom"
	"github.com/dhdaines-go/playout/item"
	"github.com/dhdaines-go/playout/laparams"
)

func glyph(x0, y0, x1, y1 float64, text string) *item.Glyph {
	g := item.NewGlyph(geom.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, text, item.Horizontal, x1-x0, true)
	return &g
}

func TestPageSingleWordBecomesOneBoxRoot(t *testing.T) {
	pg := item.NewPage(1, 0, geom.Rect{X0: 0, Y0: 0, X1: 200, Y1: 200}, []item.PageItem{
		glyph(0, 0, 10, 12, "H"),
		glyph(11, 0, 21, 12, "i"),
	})
	Page(pg, laparams.New())

	box, ok := pg.Layout.(*item.TextBox)
	if !ok {
		t.Fatalf("Layout is %T, want *item.TextBox (no group needed for one box)", pg.Layout)
	}
	if box.Index != 0 {
		t.Errorf("Index = %d, want 0", box.Index)
	}
	if len(pg.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(pg.Items))
	}
}

func TestPageTwoParagraphsProduceOrderedIndices(t *testing.T) {
	params := laparams.New()
	// Two glyphs per line, with non-overlapping x windows at the
	// line-to-line transitions, so the line aggregator splits these
	// into four distinct horizontal lines instead of chaining them
	// into a column by the vertical-adjacency flag.
	items := []item.PageItem{
		glyph(0, 80, 10, 92, "A"), glyph(11, 80, 21, 92, "a"),
		glyph(0, 65, 10, 77, "B"), glyph(11, 65, 21, 77, "b"),
		glyph(0, 30, 10, 42, "C"), glyph(11, 30, 21, 42, "c"),
		glyph(0, 15, 10, 27, "D"), glyph(11, 15, 21, 27, "d"),
	}
	pg := item.NewPage(1, 0, geom.Rect{X0: 0, Y0: 0, X1: 200, Y1: 200}, items)
	Page(pg, params)

	if _, ok := pg.Layout.(*item.TextGroup); !ok {
		t.Fatalf("Layout is %T, want *item.TextGroup", pg.Layout)
	}
	if len(pg.Items) != 2 {
		t.Fatalf("got %d items, want 2 boxes", len(pg.Items))
	}
	top := pg.Items[0].(*item.TextBox)
	bottom := pg.Items[1].(*item.TextBox)
	if top.Index != 0 || bottom.Index != 1 {
		t.Errorf("indices = %d, %d, want 0, 1 (top-first)", top.Index, bottom.Index)
	}
	if top.BBox().Y0 < bottom.BBox().Y0 {
		t.Errorf("expected top box to sit above bottom box")
	}
}

func TestPageWithNoGlyphsLeavesItemsUntouched(t *testing.T) {
	nonText := item.NewNonText(geom.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}, item.NonTextRect)
	items := []item.PageItem{nonText}
	pg := item.NewPage(1, 0, geom.Rect{X0: 0, Y0: 0, X1: 200, Y1: 200}, items)
	Page(pg, laparams.New())

	if pg.Layout != nil {
		t.Errorf("Layout = %v, want nil for a page with no glyphs", pg.Layout)
	}
	if len(pg.Items) != 1 || pg.Items[0] != item.PageItem(nonText) {
		t.Errorf("items were modified on a glyph-less page")
	}
}

func TestPageNilParamsSuppressesAnalysis(t *testing.T) {
	items := []item.PageItem{glyph(0, 0, 10, 12, "A")}
	pg := item.NewPage(1, 0, geom.Rect{X0: 0, Y0: 0, X1: 200, Y1: 200}, items)
	Page(pg, nil)

	if pg.Layout != nil {
		t.Errorf("Layout should remain nil when params is nil")
	}
}

func TestFigureSkipsAnalysisWhenAllTextsFalse(t *testing.T) {
	params := laparams.New()
	items := []item.PageItem{glyph(0, 0, 10, 12, "A"), glyph(11, 0, 21, 12, "B")}
	fig := item.NewFigure(geom.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}, item.Identity, items, params)
	Figure(fig, params)

	if fig.Layout != nil {
		t.Errorf("Layout should remain nil when AllTexts is false")
	}
	if len(fig.Items) != 2 {
		t.Errorf("figure items should remain untouched")
	}
}

func TestFigureRunsPipelineWhenAllTextsTrue(t *testing.T) {
	params := laparams.New()
	params.SetAllTexts(true)
	items := []item.PageItem{glyph(0, 0, 10, 12, "A"), glyph(11, 0, 21, 12, "B")}
	fig := item.NewFigure(geom.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}, item.Identity, items, params)
	Figure(fig, params)

	if fig.Layout == nil {
		t.Errorf("Layout should be set when AllTexts is true")
	}
	if len(fig.Items) != 1 {
		t.Errorf("got %d items, want 1 box", len(fig.Items))
	}
}

func TestPageMixedOrientationProducesTwoIndexedBoxes(t *testing.T) {
	params := laparams.New()
	h := item.NewGlyph(geom.Rect{X0: 0, Y0: 50, X1: 100, Y1: 62}, "H", item.Horizontal, 100, true)
	v := item.NewGlyph(geom.Rect{X0: 120, Y0: 0, X1: 132, Y1: 100}, "V", item.Vertical, 100, true)
	pg := item.NewPage(1, 0, geom.Rect{X0: 0, Y0: 0, X1: 200, Y1: 200}, []item.PageItem{&h, &v})
	Page(pg, params)

	if len(pg.Items) != 2 {
		t.Fatalf("got %d items, want 2 boxes", len(pg.Items))
	}
	first := pg.Items[0].(*item.TextBox)
	second := pg.Items[1].(*item.TextBox)
	if first.Index != 0 || second.Index != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", first.Index, second.Index)
	}
	if first.Orientation != item.Horizontal {
		t.Errorf("expected horizontal box to have index 0")
	}
}
