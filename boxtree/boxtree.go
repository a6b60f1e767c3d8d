// Package boxtree implements the agglomerative nearest-pair clustering
// that builds a binary reading-order tree over a page's finalized text
// boxes.
package boxtree

import (
	"math"
	"sort"

	"github.com/dhdaines-go/playout/geom"
	"github.com/dhdaines-go/playout/item"
)

// Build repeatedly merges the two closest items (by UnionAreaDistance)
// until one root remains. boxes must be non-empty. The merge order is
// fully determined: at each step, items are re-sorted ascending by
// area (stable), and the first minimal-distance pair under that
// enumeration is taken, so ties favor the smaller-area left operand
// then the smaller-area right operand.
func Build(boxes []*item.TextBox) item.TreeItem {
	items := make([]item.TreeItem, len(boxes))
	for i, b := range boxes {
		items[i] = b
	}
	for len(items) >= 2 {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Area() < items[j].Area()
		})

		mindist := math.Inf(1)
		minI, minJ := -1, -1
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				d := geom.UnionAreaDistance(items[i].BBox(), items[j].BBox())
				if d < mindist {
					mindist = d
					minI, minJ = i, j
				}
			}
		}

		left, right := items[minI], items[minJ]
		items = removeIndices(items, minI, minJ)

		var merged *item.TextGroup
		if item.VerticalFlavored(left) {
			merged = item.NewGroupTBRL(left, right)
		} else {
			merged = item.NewGroupLRTB(left, right)
		}
		items = append(items, merged)
	}
	return items[0]
}

// removeIndices drops the elements at i and j (i < j) from items,
// preserving the relative order of the rest.
func removeIndices(items []item.TreeItem, i, j int) []item.TreeItem {
	out := make([]item.TreeItem, 0, len(items)-2)
	for k, it := range items {
		if k == i || k == j {
			continue
		}
		out = append(out, it)
	}
	return out
}
