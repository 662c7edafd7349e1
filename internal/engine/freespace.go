package engine

import "github.com/packwise/glasscut/internal/model"

// geomEps absorbs float64 noise in fit and containment comparisons.
const geomEps = 0.001

// freeRect is an unused axis-aligned region of an open sheet, anchored at its
// bottom-left corner.
type freeRect struct {
	x, y, w, h float64
}

// freeSpace tracks the unused regions of a single open sheet. It is pure
// bookkeeping: callers verify a fit before committing a placement.
type freeSpace struct {
	regions []freeRect
}

func newFreeSpace(length, width float64) *freeSpace {
	return &freeSpace{regions: []freeRect{{0, 0, length, width}}}
}

// commit consumes region idx for the placed rectangle and replaces it, in
// place, with the guillotine remainders: the strips below and above span the
// full region width, the side strips are clipped to the placed rectangle's
// vertical extent. Degenerate remainders are dropped, regions not involved
// stay untouched.
func (fs *freeSpace) commit(idx int, placed freeRect) {
	r := fs.regions[idx]

	remainders := make([]freeRect, 0, 4)
	if placed.y > r.y+geomEps {
		remainders = append(remainders, freeRect{r.x, r.y, r.w, placed.y - r.y})
	}
	if top := placed.y + placed.h; top < r.y+r.h-geomEps {
		remainders = append(remainders, freeRect{r.x, top, r.w, r.y + r.h - top})
	}
	if placed.x > r.x+geomEps {
		remainders = append(remainders, freeRect{r.x, placed.y, placed.x - r.x, placed.h})
	}
	if right := placed.x + placed.w; right < r.x+r.w-geomEps {
		remainders = append(remainders, freeRect{right, placed.y, r.x + r.w - right, placed.h})
	}

	next := make([]freeRect, 0, len(fs.regions)+3)
	next = append(next, fs.regions[:idx]...)
	next = append(next, remainders...)
	next = append(next, fs.regions[idx+1:]...)
	fs.regions = pruneContained(next)
}

// export converts the ledger into the public free-region representation.
func (fs *freeSpace) export() []model.FreeRegion {
	if len(fs.regions) == 0 {
		return nil
	}
	out := make([]model.FreeRegion, len(fs.regions))
	for i, r := range fs.regions {
		out[i] = model.FreeRegion{X: r.x, Y: r.y, Length: r.w, Width: r.h}
	}
	return out
}

// pruneContained removes any region fully contained within another, keeping
// ledger order stable. This bounds fragmentation over many placements.
func pruneContained(rects []freeRect) []freeRect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]freeRect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j || !containsRect(b, a) {
				continue
			}
			// For exact duplicates keep the earliest entry only.
			if containsRect(a, b) && j > i {
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

// containsRect reports whether outer fully contains inner.
func containsRect(outer, inner freeRect) bool {
	return outer.x <= inner.x+geomEps && outer.y <= inner.y+geomEps &&
		outer.x+outer.w >= inner.x+inner.w-geomEps &&
		outer.y+outer.h >= inner.y+inner.h-geomEps
}
