package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/packwise/glasscut/internal/model"
)

// Engine runs the guillotine best-area-fit packing pass.
type Engine struct {
	Settings model.Settings
}

func New(settings model.Settings) *Engine {
	return &Engine{Settings: settings}
}

// Pack places every requested panel onto stock sheets and returns the
// resulting layout. Input validation failures abort before anything is
// packed. When the stock runs out mid-run the partial solution is returned
// together with a wrapped model.ErrStockExhausted; panels that fit no stock
// size are reported in the unplaced list without failing the run.
//
// With Settings.Refine unset the result is fully deterministic: identical
// inputs produce identical solutions.
func (e *Engine) Pack(parts []model.Part, stocks []model.StockSheet) (model.Solution, error) {
	if err := model.ValidateInputs(parts, stocks); err != nil {
		return model.Solution{}, err
	}

	instances := expandParts(parts)
	orderInstances(instances)

	if e.Settings.Refine != nil {
		return e.refine(instances, stocks)
	}
	return e.packOrdered(instances, stocks)
}

// expandParts turns each part with quantity N into N unit-demand instances.
func expandParts(parts []model.Part) []model.Part {
	var expanded []model.Part
	for _, p := range parts {
		for i := 0; i < p.Quantity; i++ {
			cp := p
			cp.Quantity = 1
			expanded = append(expanded, cp)
		}
	}
	return expanded
}

// orderInstances sorts by area descending, taller panel first on equal area,
// input order on full ties. Placing large panels first keeps fragmentation
// down.
func orderInstances(instances []model.Part) {
	sort.SliceStable(instances, func(i, j int) bool {
		ai, aj := instances[i].Area(), instances[j].Area()
		if ai != aj {
			return ai > aj
		}
		return instances[i].Height > instances[j].Height
	})
}

// openSheet is one issued stock unit still accepting placements.
type openSheet struct {
	stock      model.StockSheet
	placements []model.Placement
	space      *freeSpace
}

// place commits the panel onto this sheet if it fits anywhere.
func (s *openSheet) place(part model.Part, gap float64, allowRotation bool) bool {
	choice, ok := findBest(s.space, part.Length, part.Height, gap, allowRotation)
	if !ok {
		return false
	}
	w, h := part.Length+gap, part.Height+gap
	if choice.rotated {
		w, h = part.Height+gap, part.Length+gap
	}
	s.space.commit(choice.regionIdx, freeRect{x: choice.x, y: choice.y, w: w, h: h})
	s.placements = append(s.placements, model.Placement{
		Part:    part,
		X:       choice.x,
		Y:       choice.y,
		Rotated: choice.rotated,
	})
	return true
}

// packOrdered runs the greedy placement loop over an already ordered list of
// unit-demand instances. This is the single deterministic pass; the refiner
// calls it once per candidate ordering.
func (e *Engine) packOrdered(instances []model.Part, stocks []model.StockSheet) (model.Solution, error) {
	gap := e.Settings.Gap
	rotate := e.Settings.AllowRotation

	pool := newStockPool(stocks)
	var open []*openSheet
	var solution model.Solution
	var runErr error

	for idx, part := range instances {
		placed := false
		for _, sheet := range open {
			if sheet.place(part, gap, rotate) {
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		// A panel too large for every stock size is reported, never placed;
		// it must not consume a sheet.
		if !pool.fitsAny(part.Length, part.Height, gap, rotate) {
			solution.Unplaced = append(solution.Unplaced, model.UnplacedPart{
				Part:   part,
				Reason: model.ReasonExceedsAllStock,
			})
			continue
		}

		stock, err := pool.openFor(part.Length, part.Height, gap, rotate)
		if errors.Is(err, model.ErrStockExhausted) {
			for _, rest := range instances[idx:] {
				solution.Unplaced = append(solution.Unplaced, model.UnplacedPart{
					Part:   rest,
					Reason: model.ReasonStockExhausted,
				})
			}
			runErr = fmt.Errorf("%w: %d panels left unplaced",
				model.ErrStockExhausted, len(instances)-idx)
			break
		}
		if err != nil {
			solution.Unplaced = append(solution.Unplaced, model.UnplacedPart{
				Part:   part,
				Reason: model.ReasonStockExhausted,
			})
			continue
		}

		sheet := &openSheet{
			stock: stock,
			space: newFreeSpace(stock.Length, stock.Width),
		}
		open = append(open, sheet)
		if !sheet.place(part, gap, rotate) {
			// openFor guarantees the blank sheet admits the panel, so this
			// only guards against inconsistent pool state.
			solution.Unplaced = append(solution.Unplaced, model.UnplacedPart{
				Part:   part,
				Reason: model.ReasonExceedsAllStock,
			})
		}
	}

	for _, sheet := range open {
		if len(sheet.placements) == 0 {
			continue
		}
		solution.Sheets = append(solution.Sheets, model.Sheet{
			Stock:       sheet.stock,
			Placements:  sheet.placements,
			FreeRegions: sheet.space.export(),
		})
	}
	return solution, runErr
}
