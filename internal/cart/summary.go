package cart

import "github.com/shopspring/decimal"

// SummaryLine is the display projection of one cart line.
type SummaryLine struct {
	Name     string
	Quantity int
	Subtotal decimal.Decimal
}

// Summary projects the cart into display lines, in cart order. The grand
// total comes from Total.
func Summary(c Cart) []SummaryLine {
	lines := make([]SummaryLine, 0, len(c))
	for _, line := range c {
		lines = append(lines, SummaryLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
	}
	return lines
}
