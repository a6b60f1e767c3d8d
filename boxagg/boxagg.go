// Package boxagg implements the neighbor-based transitive closure that
// groups finalized text lines into finalized text boxes.
package boxagg

import (
	"github.com/dhdaines-go/playout/geom"
	"github.com/dhdaines-go/playout/item"
	"github.com/dhdaines-go/playout/laparams"
	"github.com/dhdaines-go/playout/plane"
)

// Boxes groups lines, in arbitrary order, into finalized text boxes:
// every line's widened neighborhood is queried in a shared Plane, and
// the symmetric neighbor relation is closed transitively by absorbing
// any box a neighbor already belongs to.
func Boxes(lines []*item.TextLine, params *laparams.LAParams) []*item.TextBox {
	if len(lines) == 0 {
		return nil
	}

	bound := geom.Empty()
	for _, l := range lines {
		bound = geom.Union(bound, l.BBox())
	}
	idx := plane.New[*item.TextLine](bound)
	for _, l := range lines {
		idx.Insert(l)
	}
	idx.Finish()

	boxOf := make(map[*item.TextLine]*item.TextBox)
	for _, l := range lines {
		neighbors := sameOrientationNeighbors(l, idx.Find(neighborRegion(l, params)))

		var members []*item.TextLine
		seen := make(map[*item.TextLine]bool)
		absorbed := make(map[*item.TextBox]bool)
		for _, n := range neighbors {
			if existing, ok := boxOf[n]; ok && !absorbed[existing] {
				absorbed[existing] = true
				for _, m := range existing.Lines() {
					if !seen[m] {
						seen[m] = true
						members = append(members, m)
					}
				}
				continue
			}
			if !seen[n] {
				seen[n] = true
				members = append(members, n)
			}
		}

		box := item.NewTextBox(l.Orientation)
		for _, m := range members {
			box.Add(m)
			boxOf[m] = box
		}
	}

	var out []*item.TextBox
	done := make(map[*item.TextBox]bool)
	for _, l := range lines {
		box := boxOf[l]
		if done[box] {
			continue
		}
		done[box] = true
		out = append(out, box.Finish())
	}
	return out
}

// neighborRegion widens a line's bbox by line_margin, in the direction
// perpendicular to its orientation, per §4.5.
func neighborRegion(l *item.TextLine, params *laparams.LAParams) geom.Rect {
	r := l.BBox()
	margin := params.LineMargin()
	if l.Orientation == item.Horizontal {
		return geom.Rect{
			X0: r.X0,
			Y0: r.Y0 - margin*l.Height(),
			X1: r.X1,
			Y1: r.Y1 + margin*l.Height(),
		}
	}
	return geom.Rect{
		X0: r.X0 - margin*l.Width(),
		Y0: r.Y0,
		X1: r.X1 + margin*l.Width(),
		Y1: r.Y1,
	}
}

func sameOrientationNeighbors(l *item.TextLine, found []*item.TextLine) []*item.TextLine {
	out := make([]*item.TextLine, 0, len(found))
	for _, n := range found {
		if n.Orientation == l.Orientation {
			out = append(out, n)
		}
	}
	return out
}
