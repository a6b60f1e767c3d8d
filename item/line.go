package item

import "math"

// TextLine is a maximal run of adjacent glyphs sharing one orientation,
// built incrementally by the line aggregator and sealed by Finish.
type TextLine struct {
	bboxAccum
	Orientation Orientation
	wordMargin  float64
	children    []Child
	text        string

	// tracking state for whitespace insertion, mirroring the rightmost
	// x1 (horizontal) / bottommost y0 (vertical) seen so far.
	rightX1 float64
	botY0   float64
}

// NewTextLine starts an empty line of the given orientation. wordMargin
// of 0 disables synthetic space insertion entirely.
func NewTextLine(orientation Orientation, wordMargin float64) *TextLine {
	return &TextLine{
		bboxAccum:   newBBoxAccum(),
		Orientation: orientation,
		wordMargin:  wordMargin,
		rightX1:     math.Inf(1),
		botY0:       math.Inf(-1),
	}
}

// Add appends a glyph to the line, inserting a synthetic Anon space
// first if the gap since the previously tracked edge exceeds the
// word-margin threshold for this orientation. It is a no-op after
// Finish.
func (l *TextLine) Add(g Glyph) {
	if l.Sealed() {
		return
	}
	if l.wordMargin != 0 {
		if l.Orientation == Horizontal {
			margin := l.wordMargin * g.Width()
			if l.rightX1 < g.Box.X0-margin {
				l.addAnon(NewAnon(" "))
			}
		} else {
			margin := l.wordMargin * g.Height()
			if g.Box.Y1+margin < l.botY0 {
				l.addAnon(NewAnon(" "))
			}
		}
	}
	if l.Orientation == Horizontal {
		if math.IsInf(l.rightX1, 1) || g.Box.X1 > l.rightX1 {
			l.rightX1 = g.Box.X1
		}
	} else {
		if math.IsInf(l.botY0, -1) || g.Box.Y0 < l.botY0 {
			l.botY0 = g.Box.Y0
		}
	}
	l.children = append(l.children, &g)
	l.absorb(g.Box)
}

// addAnon appends synthetic text without touching the bbox.
func (l *TextLine) addAnon(a Anon) {
	l.children = append(l.children, &a)
}

// Children returns the line's glyphs and inserted whitespace, in
// reading order.
func (l *TextLine) Children() []Child {
	return l.children
}

// Finish appends the terminating newline and concatenates the text of
// every child. It is idempotent.
func (l *TextLine) Finish() *TextLine {
	if l.Sealed() {
		return l
	}
	l.addAnon(NewAnon("\n"))
	var text string
	for _, c := range l.children {
		text += c.TextOf()
	}
	l.text = text
	l.seal()
	return l
}

// Text returns the finalized line text, including inserted whitespace
// and the trailing newline. Empty before Finish.
func (l *TextLine) Text() string {
	return l.text
}
