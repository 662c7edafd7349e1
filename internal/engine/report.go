package engine

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"

	"github.com/packwise/glasscut/internal/model"
)

// SheetSize identifies a stock size in the report histogram.
type SheetSize struct {
	Length float64
	Width  float64
}

// LayoutGroup is a set of sheets sharing an identical placement multiset.
// Repeated layouts are common in real cut lists, and collaborators render
// one diagram per group instead of one per sheet.
type LayoutGroup struct {
	Sheet     model.Sheet // representative layout
	Count     int
	Locations []string // distinct panel locations, natural order
}

// Report is a read-only summary of a packing solution.
type Report struct {
	SheetsUsed         int
	TotalStockArea     float64
	TotalPanelArea     float64
	UtilizationPct     float64
	WastePct           float64
	SheetSizeHistogram map[SheetSize]int
	Groups             []LayoutGroup
	UnplacedCount      int
}

// Summarize aggregates a solution into a report. It is a pure function of
// the solution; group order follows first appearance, so the report is
// deterministic for a deterministic solution.
func Summarize(solution model.Solution) Report {
	report := Report{
		SheetsUsed:         len(solution.Sheets),
		SheetSizeHistogram: make(map[SheetSize]int),
		UnplacedCount:      len(solution.Unplaced),
	}

	groupIdx := make(map[string]int)
	for _, sheet := range solution.Sheets {
		report.TotalStockArea += sheet.TotalArea()
		report.TotalPanelArea += sheet.UsedArea()
		report.SheetSizeHistogram[SheetSize{sheet.Stock.Length, sheet.Stock.Width}]++

		sig := layoutSignature(sheet)
		if i, ok := groupIdx[sig]; ok {
			report.Groups[i].Count++
			continue
		}
		groupIdx[sig] = len(report.Groups)
		report.Groups = append(report.Groups, LayoutGroup{
			Sheet:     sheet,
			Count:     1,
			Locations: sheetLocations(sheet),
		})
	}

	if report.TotalStockArea > 0 {
		report.UtilizationPct = (report.TotalPanelArea / report.TotalStockArea) * 100.0
		report.WastePct = 100.0 - report.UtilizationPct
	}
	return report
}

// layoutSignature encodes a sheet's placement multiset, order-independently:
// two sheets with the same panels in the same orientations on the same stock
// size get the same signature regardless of placement order.
func layoutSignature(sheet model.Sheet) string {
	entries := make([]string, len(sheet.Placements))
	for i, p := range sheet.Placements {
		entries[i] = fmt.Sprintf("%gx%g/%t", p.Part.Length, p.Part.Height, p.Rotated)
	}
	sort.Strings(entries)

	sig := fmt.Sprintf("%gx%g:", sheet.Stock.Length, sheet.Stock.Width)
	for _, e := range entries {
		sig += e + ";"
	}
	return sig
}

// sheetLocations returns the distinct panel locations on a sheet in natural
// order, so "W2" sorts before "W10".
func sheetLocations(sheet model.Sheet) []string {
	seen := make(map[string]bool)
	var locations []string
	for _, p := range sheet.Placements {
		if p.Part.Location == "" || seen[p.Part.Location] {
			continue
		}
		seen[p.Part.Location] = true
		locations = append(locations, p.Part.Location)
	}
	sort.Slice(locations, func(i, j int) bool {
		return natural.Less(locations[i], locations[j])
	})
	return locations
}
