// Package cart implements the shopping cart as a value threaded through
// every operation: callers own the Cart, pass it in, and keep the returned
// one. An operation that signals a condition returns the input unchanged, so
// the previous value is always safe to keep using.
package cart

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/storefront-simulator/internal/models"
)

// ErrNotInCart is returned when a remove or delete targets a product id with
// no line in the cart.
var ErrNotInCart = errors.New("item not found in cart")

// StockExceededError signals an add on a line already at its product's stock
// ceiling. The cart is left unchanged.
type StockExceededError struct {
	Name  string
	Stock int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("not enough stock for %q: the maximum of %d is already in the cart", e.Name, e.Stock)
}

// OutOfStockError signals an add on a product with zero stock and no
// existing line.
type OutOfStockError struct {
	Name string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%q is currently out of stock", e.Name)
}

// Line is one product's entry in a cart: a snapshot of the product's display
// fields plus a quantity. Quantity is always between 1 and the product's
// stock at the time of the last add; a quantity of zero never exists because
// reaching zero removes the line.
type Line struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal is the line's price times its quantity, unrounded.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered sequence of lines, one per product id, in first-add
// order.
type Cart []Line

// AddOneUnit adds a single unit of p to the cart. The stock ceiling is
// re-read from p on every call, so repeated calls never push a line past the
// product's current stock.
func AddOneUnit(c Cart, p models.Product) (Cart, error) {
	for i, line := range c {
		if line.ProductID == p.ID {
			if line.Quantity >= p.Stock {
				return c, &StockExceededError{Name: p.Name, Stock: p.Stock}
			}
			next := slices.Clone(c)
			next[i].Quantity++
			return next, nil
		}
	}

	if p.Stock <= 0 {
		return c, &OutOfStockError{Name: p.Name}
	}

	next := slices.Clone(c)
	return append(next, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	}), nil
}

// RemoveOneUnit takes a single unit off the line for productID. A line at
// quantity 1 is removed entirely. Decrements never re-check the stock
// ceiling: going down can only move the quantity further inside range.
func RemoveOneUnit(c Cart, productID int) (Cart, error) {
	for i, line := range c {
		if line.ProductID == productID {
			next := slices.Clone(c)
			if line.Quantity > 1 {
				next[i].Quantity--
				return next, nil
			}
			return slices.Delete(next, i, i+1), nil
		}
	}

	return c, ErrNotInCart
}

// DeleteLine removes the whole line for productID regardless of quantity.
func DeleteLine(c Cart, productID int) (Cart, error) {
	for i, line := range c {
		if line.ProductID == productID {
			next := slices.Clone(c)
			return slices.Delete(next, i, i+1), nil
		}
	}

	return c, ErrNotInCart
}

// Total sums price times quantity over all lines. The accumulation is exact;
// rounding to two digits happens only at display time.
func Total(c Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Subtotal())
	}
	return total
}
