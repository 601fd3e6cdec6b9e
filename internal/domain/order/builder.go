package order

import (
	"github.com/shopspring/decimal"

	"github.com/tranquochuy/sotay-pos/internal/domain/catalog"
	"github.com/tranquochuy/sotay-pos/internal/domain/parser"
)

// PriceHistory maps folded product names to the last known unit price.
// It is a read-only snapshot passed in by the caller; the builder only
// consults it when the parser detected no price.
type PriceHistory map[string]decimal.Decimal

// HistoryKey normalizes a product name into its price-history key.
func HistoryKey(name string) string {
	return catalog.Fold(name)
}

// BuildLine turns a parsed utterance into an order line. A catalog
// match supplies the canonical name and cost price; when the parser saw
// no price the history price (then the catalog price) fills the gap.
// An explicit total price is divided by quantity to store a unit price.
func BuildLine(p parser.ParsedLine, match *catalog.Entry, history PriceHistory) Line {
	line := Line{
		Name:              p.Name,
		Quantity:          p.Quantity,
		Discount:          p.DiscountValue,
		DiscountIsPercent: p.DiscountIsPercent,
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	if match != nil {
		line.Name = match.Name
		line.CostPrice = match.CostPrice
		line.CatalogLinked = true
	}

	switch {
	case p.PriceDetected:
		line.UnitPrice = p.UnitPrice
		if p.PriceContext == parser.PriceContextTotal && line.Quantity > 1 {
			line.UnitPrice = p.UnitPrice.Div(decimal.NewFromInt(int64(line.Quantity)))
		}
	default:
		if price, ok := history[HistoryKey(p.Name)]; ok {
			line.UnitPrice = price
		} else if match != nil {
			line.UnitPrice = match.Price
		}
	}

	return line
}
