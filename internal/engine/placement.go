package engine

// placementChoice is the outcome of scanning a sheet's free regions for one
// panel: the chosen ledger entry, the anchor position and the orientation.
type placementChoice struct {
	regionIdx int
	x, y      float64
	rotated   bool
	leftover  float64
	perimeter float64
}

// findBest returns the best-area-fit placement for a length x height panel on
// the given ledger, testing the rotated orientation when allowed. A panel
// fits a region when both dimensions plus the cutting gap fit inside it.
// Ties are broken by preferring the unrotated orientation, then the region
// with the smaller perimeter, then the earliest ledger entry, so results are
// reproducible for identical inputs.
func findBest(fs *freeSpace, length, height, gap float64, allowRotation bool) (placementChoice, bool) {
	type orientation struct {
		w, h    float64
		rotated bool
	}
	orientations := [2]orientation{{length, height, false}, {height, length, true}}
	n := 1
	if allowRotation && length != height {
		n = 2
	}

	var best placementChoice
	found := false
	for i, r := range fs.regions {
		for _, o := range orientations[:n] {
			if o.w+gap > r.w+geomEps || o.h+gap > r.h+geomEps {
				continue
			}
			cand := placementChoice{
				regionIdx: i,
				x:         r.x,
				y:         r.y,
				rotated:   o.rotated,
				leftover:  r.w*r.h - o.w*o.h,
				perimeter: 2 * (r.w + r.h),
			}
			if !found || betterChoice(cand, best) {
				best = cand
				found = true
			}
		}
	}
	return best, found
}

func betterChoice(a, b placementChoice) bool {
	if a.leftover != b.leftover {
		return a.leftover < b.leftover
	}
	if a.rotated != b.rotated {
		return !a.rotated
	}
	if a.perimeter != b.perimeter {
		return a.perimeter < b.perimeter
	}
	return false
}
