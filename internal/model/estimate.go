package model

import "math"

// PurchaseEstimate holds the results of a stock purchasing calculation.
// It is an area-based estimate computed before any layout exists, useful
// for quoting and ordering material.
type PurchaseEstimate struct {
	TotalPanelArea    float64 `json:"total_panel_area"`    // total area of all panels (sq mm)
	TotalSquareMeters float64 `json:"total_square_meters"` // same area in square meters
	SheetArea         float64 `json:"sheet_area"`          // area of one sheet (sq mm)
	SheetsNeededExact float64 `json:"sheets_needed_exact"` // exact fractional number of sheets
	SheetsNeededMin   int     `json:"sheets_needed_min"`   // minimum sheets (ceiling of exact)
	SheetsWithWaste   int     `json:"sheets_with_waste"`   // recommended sheets including waste factor
	WastePercent      float64 `json:"waste_percent"`       // waste factor applied (e.g. 15 for 15%)
	EstimatedCost     float64 `json:"estimated_cost"`      // total cost if pricing available
	PricePerSheet     float64 `json:"price_per_sheet"`     // price used for estimation
	Gap               float64 `json:"gap"`                 // cutting gap used in the calculation
}

const sqmmPerSquareMeter = 1e6

// CalculatePurchaseEstimate computes how many sheets to buy for a given cut
// list. Each panel is padded by the cutting gap, and an additional waste
// percentage covers layout losses the area estimate cannot see.
func CalculatePurchaseEstimate(parts []Part, sheetLength, sheetWidth, gap, wastePercent, pricePerSheet float64) PurchaseEstimate {
	var totalPanelArea float64
	for _, p := range parts {
		panelL := p.Length + gap
		panelH := p.Height + gap
		totalPanelArea += panelL * panelH * float64(p.Quantity)
	}

	sheetArea := sheetLength * sheetWidth
	if sheetArea <= 0 {
		return PurchaseEstimate{
			TotalPanelArea:    totalPanelArea,
			TotalSquareMeters: totalPanelArea / sqmmPerSquareMeter,
			WastePercent:      wastePercent,
		}
	}

	exactSheets := totalPanelArea / sheetArea
	minSheets := int(math.Ceil(exactSheets))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	sheetsWithWaste := int(math.Ceil(exactSheets * wasteFactor))
	if sheetsWithWaste < minSheets {
		sheetsWithWaste = minSheets
	}

	return PurchaseEstimate{
		TotalPanelArea:    totalPanelArea,
		TotalSquareMeters: totalPanelArea / sqmmPerSquareMeter,
		SheetArea:         sheetArea,
		SheetsNeededExact: exactSheets,
		SheetsNeededMin:   minSheets,
		SheetsWithWaste:   sheetsWithWaste,
		WastePercent:      wastePercent,
		EstimatedCost:     float64(sheetsWithWaste) * pricePerSheet,
		PricePerSheet:     pricePerSheet,
		Gap:               gap,
	}
}
