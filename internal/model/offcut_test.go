package model

import "testing"

func TestDetectOffcutsFiltersSmallRegions(t *testing.T) {
	sheet := Sheet{
		Stock: StockSheet{Label: "Float 4mm", Length: 1000, Width: 1000},
		FreeRegions: []FreeRegion{
			{X: 400, Y: 0, Length: 600, Width: 300},  // usable
			{X: 0, Y: 300, Length: 40, Width: 500},   // too narrow
			{X: 0, Y: 900, Length: 80, Width: 80},    // below minimum area
			{X: 400, Y: 300, Length: 200, Width: 100}, // usable, smaller
		},
	}

	offcuts := DetectOffcuts(sheet, 2)

	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}
	if offcuts[0].Area() < offcuts[1].Area() {
		t.Error("offcuts should be sorted largest first")
	}
	if offcuts[0].Length != 600 || offcuts[0].Width != 300 {
		t.Errorf("unexpected largest offcut: %+v", offcuts[0])
	}
	if offcuts[0].SheetIndex != 2 || offcuts[0].SheetLabel != "Float 4mm" {
		t.Errorf("offcut should carry its source sheet: %+v", offcuts[0])
	}
}

func TestDetectOffcutsEmptyFreeRegions(t *testing.T) {
	sheet := Sheet{Stock: StockSheet{Label: "S", Length: 1000, Width: 1000}}
	if offcuts := DetectOffcuts(sheet, 0); len(offcuts) != 0 {
		t.Errorf("expected no offcuts, got %d", len(offcuts))
	}
}

func TestOffcutToStockSheet(t *testing.T) {
	o := Offcut{SheetLabel: "Float 4mm", Length: 600, Width: 300}
	stock := o.ToStockSheet()

	if stock.Label != "Offcut Float 4mm" {
		t.Errorf("unexpected label: %q", stock.Label)
	}
	if stock.Length != 600 || stock.Width != 300 || stock.Quantity != 1 {
		t.Errorf("unexpected stock: %+v", stock)
	}
}

func TestDetectAllOffcuts(t *testing.T) {
	solution := Solution{
		Sheets: []Sheet{
			{
				Stock:       StockSheet{Label: "A", Length: 1000, Width: 1000},
				FreeRegions: []FreeRegion{{X: 0, Y: 500, Length: 1000, Width: 500}},
			},
			{
				Stock:       StockSheet{Label: "B", Length: 1000, Width: 1000},
				FreeRegions: []FreeRegion{{X: 0, Y: 800, Length: 1000, Width: 200}},
			},
		},
	}

	offcuts := DetectAllOffcuts(solution)

	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}
	if total := TotalOffcutArea(offcuts); total != 500000+200000 {
		t.Errorf("expected total area 700000, got %.0f", total)
	}
}
