package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable rectangular remnant left over after cutting.
type Offcut struct {
	ID         string  `json:"id"`
	SheetLabel string  `json:"sheet_label"` // which stock the remnant came from
	SheetIndex int     `json:"sheet_index"` // index of the source sheet in the solution
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Length     float64 `json:"length"`
	Width      float64 `json:"width"`
}

// Area returns the area of the offcut in square mm.
func (o Offcut) Area() float64 {
	return o.Length * o.Width
}

// ToStockSheet converts an offcut into a stock sheet for reuse in a later job.
func (o Offcut) ToStockSheet() StockSheet {
	return NewStockSheet("Offcut "+o.SheetLabel, o.Length, o.Width, 1)
}

// MinOffcutDimension is the minimum length or width (in mm) for a remnant
// to be considered a usable offcut. Remnants smaller than this are waste.
const MinOffcutDimension = 50.0

// MinOffcutArea is the minimum area (in sq mm) for a remnant to be considered
// usable.
const MinOffcutArea = 10000.0

// DetectOffcuts filters a sheet's free regions down to remnants large enough
// to be reused, largest first.
func DetectOffcuts(sheet Sheet, sheetIndex int) []Offcut {
	var offcuts []Offcut
	for _, r := range sheet.FreeRegions {
		if r.Length < MinOffcutDimension || r.Width < MinOffcutDimension {
			continue
		}
		if r.Area() < MinOffcutArea {
			continue
		}
		offcuts = append(offcuts, Offcut{
			ID:         uuid.New().String()[:8],
			SheetLabel: sheet.Stock.Label,
			SheetIndex: sheetIndex,
			X:          r.X,
			Y:          r.Y,
			Length:     r.Length,
			Width:      r.Width,
		})
	}

	sort.Slice(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})

	return offcuts
}

// DetectAllOffcuts finds offcuts across all sheets of a solution.
func DetectAllOffcuts(solution Solution) []Offcut {
	var all []Offcut
	for i, sheet := range solution.Sheets {
		all = append(all, DetectOffcuts(sheet, i)...)
	}
	return all
}

// TotalOffcutArea returns the total area of all offcuts in square mm.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
