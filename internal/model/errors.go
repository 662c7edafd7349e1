package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a part or stock entry carries a
// non-positive dimension or quantity. Nothing is packed in that case.
var ErrInvalidInput = errors.New("invalid input")

// ErrStockExhausted is returned when every configured stock type runs out of
// quantity while panels remain to be placed. The partial solution is still
// returned alongside it.
var ErrStockExhausted = errors.New("stock exhausted")

// ValidateInputs checks parts and stocks before any packing is attempted.
func ValidateInputs(parts []Part, stocks []StockSheet) error {
	for _, p := range parts {
		if p.Length <= 0 || p.Height <= 0 {
			return fmt.Errorf("%w: panel %q has non-positive dimensions %.1fx%.1f",
				ErrInvalidInput, p.Location, p.Length, p.Height)
		}
		if p.Quantity <= 0 {
			return fmt.Errorf("%w: panel %q has non-positive quantity %d",
				ErrInvalidInput, p.Location, p.Quantity)
		}
	}
	for _, s := range stocks {
		if s.Length <= 0 || s.Width <= 0 {
			return fmt.Errorf("%w: stock %q has non-positive dimensions %.1fx%.1f",
				ErrInvalidInput, s.Label, s.Length, s.Width)
		}
		if s.Quantity < 0 {
			return fmt.Errorf("%w: stock %q has negative quantity %d",
				ErrInvalidInput, s.Label, s.Quantity)
		}
	}
	return nil
}
