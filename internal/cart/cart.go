// Package cart holds the in-memory shopping cart of the running session.
//
// An Engine is owned by the application controller and is not safe for
// concurrent use; all mutations happen on the UI event path.
package cart

import (
	"fmt"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// Line is one product in the cart. Display fields are copied from the
// product when it is first added and are not refreshed afterwards.
type Line struct {
	ProductID   int64
	Name        string
	UnitPrice   float64
	Quantity    int
	Description string
	Category    string
	Supplier    string
	ImageURL    string
}

// Subtotal is UnitPrice times Quantity, unrounded.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Gate tells the engine whether a user is logged in.
type Gate interface {
	Authenticated() bool
}

type Engine struct {
	gate  Gate
	lines []Line
}

func New(gate Gate) *Engine {
	return &Engine{gate: gate}
}

// AddItem merges product into the cart. It returns ErrUnauthenticated
// without touching the cart when nobody is logged in.
func (e *Engine) AddItem(p model.Product) error {
	if e.gate == nil || !e.gate.Authenticated() {
		return apperrors.ErrUnauthenticated
	}

	if i := e.index(p.ID); i >= 0 {
		e.lines[i].Quantity++
		return nil
	}

	e.lines = append(e.lines, Line{
		ProductID:   p.ID,
		Name:        p.Name,
		UnitPrice:   p.Price,
		Quantity:    1,
		Description: p.Description,
		Category:    p.CategoryName(),
		Supplier:    p.SupplierName(),
		ImageURL:    p.ImageURL,
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line. Values below 1 and
// unknown ids are ignored.
func (e *Engine) UpdateQuantity(productID int64, quantity int) {
	if quantity < 1 {
		return
	}
	if i := e.index(productID); i >= 0 {
		e.lines[i].Quantity = quantity
	}
}

// RemoveItem deletes the line for productID if present.
func (e *Engine) RemoveItem(productID int64) {
	i := e.index(productID)
	if i < 0 {
		return
	}
	e.lines = append(e.lines[:i:i], e.lines[i+1:]...)
}

// Clear empties the cart.
func (e *Engine) Clear() {
	e.lines = nil
}

// Lines returns a copy of the cart in insertion order.
func (e *Engine) Lines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// Line returns the line for productID.
func (e *Engine) Line(productID int64) (Line, bool) {
	if i := e.index(productID); i >= 0 {
		return e.lines[i], true
	}
	return Line{}, false
}

// Len is the number of distinct products.
func (e *Engine) Len() int { return len(e.lines) }

// Count is the number of units across all lines.
func (e *Engine) Count() int {
	n := 0
	for _, l := range e.lines {
		n += l.Quantity
	}
	return n
}

// Total sums the line subtotals. The result is not rounded; use FormatMoney
// when displaying it.
func (e *Engine) Total() float64 {
	var total float64
	for _, l := range e.lines {
		total += l.Subtotal()
	}
	return total
}

// Items converts the cart into order lines, preserving order.
func (e *Engine) Items() []model.OrderLine {
	items := make([]model.OrderLine, 0, len(e.lines))
	for _, l := range e.lines {
		items = append(items, model.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return items
}

func (e *Engine) index(productID int64) int {
	for i, l := range e.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// FormatMoney renders an amount with two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
