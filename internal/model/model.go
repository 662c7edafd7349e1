package model

import "github.com/google/uuid"

// Part represents one required glass panel in the cut list.
// Length and Height are the nominal panel dimensions in mm.
type Part struct {
	ID       string  `json:"id"`
	Location string  `json:"location"` // where the panel goes, e.g. "kitchen W2"
	Length   float64 `json:"length"`   // mm
	Height   float64 `json:"height"`   // mm
	Quantity int     `json:"quantity"`
}

func NewPart(location string, length, height float64, qty int) Part {
	return Part{
		ID:       uuid.New().String()[:8],
		Location: location,
		Length:   length,
		Height:   height,
		Quantity: qty,
	}
}

// Area returns the area of a single panel in square mm.
func (p Part) Area() float64 {
	return p.Length * p.Height
}

// StockSheet represents an available stock size to cut panels from.
type StockSheet struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Length   float64 `json:"length"` // mm
	Width    float64 `json:"width"`  // mm
	Quantity int     `json:"quantity"`
}

func NewStockSheet(label string, length, width float64, qty int) StockSheet {
	return StockSheet{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   length,
		Width:    width,
		Quantity: qty,
	}
}

// Area returns the area of one sheet of this stock in square mm.
func (s StockSheet) Area() float64 {
	return s.Length * s.Width
}

// FreeRegion is an unused rectangular area of a cut sheet, anchored at its
// bottom-left corner in the sheet's local coordinate system.
type FreeRegion struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Area returns the region area in square mm.
func (r FreeRegion) Area() float64 {
	return r.Length * r.Width
}

// Placement represents a single panel placed on a stock sheet.
type Placement struct {
	Part    Part    `json:"part"`
	X       float64 `json:"x"`       // mm from the left sheet edge
	Y       float64 `json:"y"`       // mm from the bottom sheet edge
	Rotated bool    `json:"rotated"` // whether the panel was rotated 90 degrees
}

// PlacedLength returns the effective horizontal extent considering rotation.
func (p Placement) PlacedLength() float64 {
	if p.Rotated {
		return p.Part.Height
	}
	return p.Part.Length
}

// PlacedHeight returns the effective vertical extent considering rotation.
func (p Placement) PlacedHeight() float64 {
	if p.Rotated {
		return p.Part.Length
	}
	return p.Part.Height
}

// Sheet is one consumed stock unit with its placed panels and the unused
// regions that remain after cutting.
type Sheet struct {
	Stock       StockSheet   `json:"stock"`
	Placements  []Placement  `json:"placements"`
	FreeRegions []FreeRegion `json:"free_regions,omitempty"`
}

// UsedArea returns the total area covered by placed panels.
func (s Sheet) UsedArea() float64 {
	var total float64
	for _, p := range s.Placements {
		total += p.PlacedLength() * p.PlacedHeight()
	}
	return total
}

// TotalArea returns the stock sheet area.
func (s Sheet) TotalArea() float64 {
	return s.Stock.Area()
}

// Efficiency returns the material usage percentage for this sheet.
func (s Sheet) Efficiency() float64 {
	ta := s.TotalArea()
	if ta == 0 {
		return 0
	}
	return (s.UsedArea() / ta) * 100.0
}

// UnplacedReason says why a panel instance could not be placed.
type UnplacedReason int

const (
	// ReasonExceedsAllStock marks a panel that fits no configured stock size
	// in either orientation.
	ReasonExceedsAllStock UnplacedReason = iota
	// ReasonStockExhausted marks a panel left over once no suitable stock
	// quantity remained.
	ReasonStockExhausted
)

func (r UnplacedReason) String() string {
	switch r {
	case ReasonStockExhausted:
		return "stock exhausted"
	default:
		return "exceeds all stock sizes"
	}
}

// UnplacedPart is a panel instance that could not be placed, with the reason.
type UnplacedPart struct {
	Part   Part           `json:"part"`
	Reason UnplacedReason `json:"reason"`
}

// Solution holds the full multi-sheet layout produced by one packing run.
type Solution struct {
	Sheets   []Sheet        `json:"sheets"`
	Unplaced []UnplacedPart `json:"unplaced,omitempty"`
}

// PlacedCount returns the number of panel instances placed across all sheets.
func (s Solution) PlacedCount() int {
	n := 0
	for _, sheet := range s.Sheets {
		n += len(sheet.Placements)
	}
	return n
}

// TotalEfficiency returns overall material usage percentage across all
// consumed sheets.
func (s Solution) TotalEfficiency() float64 {
	var usedArea, totalArea float64
	for _, sheet := range s.Sheets {
		usedArea += sheet.UsedArea()
		totalArea += sheet.TotalArea()
	}
	if totalArea == 0 {
		return 0
	}
	return (usedArea / totalArea) * 100.0
}
