package sidebar

import (
	"sort"

	"github.com/dshills/framescope/internal/buffer"
	"github.com/dshills/framescope/internal/frame"
)

// ByName orders buffers lexicographically by display name. This is the
// default (and final tie-breaking) comparator.
func ByName(a, b buffer.Buffer) bool {
	return a.Name < b.Name
}

// ModifiedFirst groups buffers with unsaved changes ahead of clean
// ones. Use as a leading comparator with ByName as the secondary key.
func ModifiedFirst(a, b buffer.Buffer) bool {
	return a.Modified && !b.Modified
}

// VisibleFirst groups buffers currently visible in the frame ahead of
// hidden ones.
func VisibleFirst(a, b buffer.Buffer) bool {
	return a.Visible && !b.Visible
}

// sortBuffers applies the comparators in order: earlier comparators
// dominate, later ones break ties. Name and then ID are always the
// final keys, so the result is deterministic for any input order.
func sortBuffers(set buffer.Set, comparators []frame.Less) buffer.Set {
	out := set.Clone()

	chain := make([]frame.Less, 0, len(comparators)+2)
	chain = append(chain, comparators...)
	chain = append(chain, ByName, func(a, b buffer.Buffer) bool {
		return a.ID < b.ID
	})

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for _, less := range chain {
			if less(a, b) {
				return true
			}
			if less(b, a) {
				return false
			}
		}
		return false
	})
	return out
}
