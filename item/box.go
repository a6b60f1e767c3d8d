package item

import "sort"

// TextBox is a connected component of lines that all share one
// orientation, as produced by the box aggregator. Its reading index is
// assigned later by the orchestration step.
type TextBox struct {
	bboxAccum
	Orientation Orientation
	lines       []*TextLine
	text        string
	Index       int
}

// NewTextBox starts an empty box of the given orientation.
func NewTextBox(orientation Orientation) *TextBox {
	return &TextBox{bboxAccum: newBBoxAccum(), Orientation: orientation, Index: -1}
}

// Add absorbs a line into the box. It is a no-op after Finish.
func (b *TextBox) Add(l *TextLine) {
	if b.Sealed() {
		return
	}
	b.lines = append(b.lines, l)
	b.absorb(l.BBox())
}

// Lines returns the box's lines, in reading order after Finish (and in
// insertion order before it).
func (b *TextBox) Lines() []*TextLine {
	return b.lines
}

// Finish sorts the box's lines (descending y1 for horizontal boxes,
// descending x1 for vertical boxes) and concatenates their text.
func (b *TextBox) Finish() *TextBox {
	if b.Sealed() {
		return b
	}
	if b.Orientation == Horizontal {
		csortStable(b.lines, func(l *TextLine) float64 { return -l.BBox().Y1 })
	} else {
		csortStable(b.lines, func(l *TextLine) float64 { return -l.BBox().X1 })
	}
	var text string
	for _, l := range b.lines {
		text += l.Text()
	}
	b.text = text
	b.seal()
	return b
}

// Text returns the finalized, concatenated text of the box's lines.
func (b *TextBox) Text() string {
	return b.text
}

// csortStable sorts items ascending by key, preserving the relative
// order of equal keys (a stable sort, load-bearing for reproducible
// clustering and reading order per the module's determinism rules).
func csortStable[T any](items []T, key func(T) float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
