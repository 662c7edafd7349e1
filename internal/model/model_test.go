package model

import (
	"errors"
	"testing"
)

func TestNewPartAssignsID(t *testing.T) {
	p := NewPart("kitchen W2", 600, 400, 3)
	if p.ID == "" {
		t.Error("expected generated ID")
	}
	if len(p.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", p.ID)
	}
	if p.Location != "kitchen W2" || p.Quantity != 3 {
		t.Errorf("unexpected part fields: %+v", p)
	}
}

func TestPartArea(t *testing.T) {
	p := NewPart("A", 600, 400, 1)
	if p.Area() != 240000 {
		t.Errorf("expected area 240000, got %.1f", p.Area())
	}
}

func TestPlacementEffectiveDimensions(t *testing.T) {
	part := NewPart("A", 800, 400, 1)

	normal := Placement{Part: part, Rotated: false}
	if normal.PlacedLength() != 800 || normal.PlacedHeight() != 400 {
		t.Errorf("unexpected normal dimensions: %.0fx%.0f",
			normal.PlacedLength(), normal.PlacedHeight())
	}

	rotated := Placement{Part: part, Rotated: true}
	if rotated.PlacedLength() != 400 || rotated.PlacedHeight() != 800 {
		t.Errorf("unexpected rotated dimensions: %.0fx%.0f",
			rotated.PlacedLength(), rotated.PlacedHeight())
	}
}

func TestSheetEfficiency(t *testing.T) {
	sheet := Sheet{
		Stock: StockSheet{Label: "S", Length: 1000, Width: 1000},
		Placements: []Placement{
			{Part: Part{Length: 400, Height: 300}},
			{Part: Part{Length: 400, Height: 300}},
		},
	}

	if eff := sheet.Efficiency(); eff != 24.0 {
		t.Errorf("expected 24%% efficiency, got %.2f%%", eff)
	}
}

func TestSheetEfficiencyZeroArea(t *testing.T) {
	sheet := Sheet{Stock: StockSheet{}}
	if eff := sheet.Efficiency(); eff != 0 {
		t.Errorf("expected 0 efficiency for zero-area sheet, got %.2f", eff)
	}
}

func TestSolutionTotalEfficiency(t *testing.T) {
	solution := Solution{
		Sheets: []Sheet{
			{
				Stock:      StockSheet{Length: 1000, Width: 1000},
				Placements: []Placement{{Part: Part{Length: 500, Height: 500}}},
			},
			{
				Stock:      StockSheet{Length: 1000, Width: 1000},
				Placements: []Placement{{Part: Part{Length: 500, Height: 500}}},
			},
		},
	}
	if eff := solution.TotalEfficiency(); eff != 25.0 {
		t.Errorf("expected 25%%, got %.2f%%", eff)
	}

	empty := Solution{}
	if eff := empty.TotalEfficiency(); eff != 0 {
		t.Errorf("expected 0 for empty solution, got %.2f", eff)
	}
}

func TestValidateInputs(t *testing.T) {
	good := []Part{NewPart("A", 100, 100, 1)}
	goodStocks := []StockSheet{NewStockSheet("S", 1000, 1000, 1)}

	if err := ValidateInputs(good, goodStocks); err != nil {
		t.Errorf("unexpected error for valid input: %v", err)
	}

	cases := []struct {
		name   string
		parts  []Part
		stocks []StockSheet
	}{
		{"zero length", []Part{{Location: "A", Length: 0, Height: 10, Quantity: 1}}, goodStocks},
		{"negative height", []Part{{Location: "A", Length: 10, Height: -1, Quantity: 1}}, goodStocks},
		{"zero quantity", []Part{{Location: "A", Length: 10, Height: 10, Quantity: 0}}, goodStocks},
		{"zero stock width", good, []StockSheet{{Label: "S", Length: 100, Width: 0, Quantity: 1}}},
		{"negative stock quantity", good, []StockSheet{{Label: "S", Length: 100, Width: 100, Quantity: -1}}},
	}

	for _, tc := range cases {
		if err := ValidateInputs(tc.parts, tc.stocks); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestValidateInputsAllowsZeroStockQuantity(t *testing.T) {
	stocks := []StockSheet{NewStockSheet("Spent", 1000, 1000, 0)}
	if err := ValidateInputs(nil, stocks); err != nil {
		t.Errorf("zero quantity stock is valid (just unusable): %v", err)
	}
}

func TestUnplacedReasonString(t *testing.T) {
	if got := ReasonExceedsAllStock.String(); got != "exceeds all stock sizes" {
		t.Errorf("unexpected string: %q", got)
	}
	if got := ReasonStockExhausted.String(); got != "stock exhausted" {
		t.Errorf("unexpected string: %q", got)
	}
}
