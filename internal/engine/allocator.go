package engine

import (
	"errors"

	"github.com/packwise/glasscut/internal/model"
)

// errNoUsableStock signals that stock quantity remains but none of the
// remaining types admits the requested panel. The caller records the panel
// as unplaced and continues.
var errNoUsableStock = errors.New("no remaining stock type fits")

// stockPool hands out sheets from the configured stock types, counting down
// the remaining quantity per type. Types are always tried in input order.
type stockPool struct {
	types []model.StockSheet
}

func newStockPool(stocks []model.StockSheet) *stockPool {
	types := make([]model.StockSheet, len(stocks))
	copy(types, stocks)
	return &stockPool{types: types}
}

// empty reports whether every configured type has run out of quantity.
func (sp *stockPool) empty() bool {
	for _, s := range sp.types {
		if s.Quantity > 0 {
			return false
		}
	}
	return true
}

// admits reports whether a length x height panel fits on a blank sheet of the
// given stock in some allowed orientation.
func admits(stock model.StockSheet, length, height, gap float64, allowRotation bool) bool {
	if length+gap <= stock.Length+geomEps && height+gap <= stock.Width+geomEps {
		return true
	}
	if allowRotation && height+gap <= stock.Length+geomEps && length+gap <= stock.Width+geomEps {
		return true
	}
	return false
}

// fitsAny reports whether the panel fits at least one configured stock type,
// ignoring remaining quantities. A panel failing this check is unplaceable by
// construction.
func (sp *stockPool) fitsAny(length, height, gap float64, allowRotation bool) bool {
	for _, s := range sp.types {
		if admits(s, length, height, gap, allowRotation) {
			return true
		}
	}
	return false
}

// openFor draws one sheet of the first stock type, in input order, that still
// has quantity and whose dimensions admit the panel. It returns
// model.ErrStockExhausted when every type's quantity is spent, and
// errNoUsableStock when quantity remains only on types too small for the
// panel.
func (sp *stockPool) openFor(length, height, gap float64, allowRotation bool) (model.StockSheet, error) {
	if sp.empty() {
		return model.StockSheet{}, model.ErrStockExhausted
	}
	for i := range sp.types {
		if sp.types[i].Quantity <= 0 {
			continue
		}
		if !admits(sp.types[i], length, height, gap, allowRotation) {
			continue
		}
		sp.types[i].Quantity--
		issued := sp.types[i]
		issued.Quantity = 1
		return issued, nil
	}
	return model.StockSheet{}, errNoUsableStock
}
