// Package order holds the transactional records of the POS: order
// lines built from parsed utterances, finalized orders, restock bills
// and operating expenses.
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Line is one item on an order. Lines are created at parse time,
// appended to an in-progress order, and immutable once the order is
// finalized into a historical record.
type Line struct {
	Name              string
	Quantity          int
	UnitPrice         decimal.Decimal
	CostPrice         decimal.Decimal
	Discount          decimal.Decimal
	DiscountIsPercent bool

	// CatalogLinked is false for free-text lines the matcher could not
	// resolve; those carry no cost price or stock linkage.
	CatalogLinked bool
}

// Total is quantity × unitPrice − discount, with percent discounts
// applied against the gross amount.
func (l Line) Total() decimal.Decimal {
	gross := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
	if l.DiscountIsPercent {
		return gross.Sub(gross.Mul(l.Discount).Div(hundred))
	}
	return gross.Sub(l.Discount)
}

// TotalCost is the cost-price value of the line, the COGS contribution
// when the order is sold.
func (l Line) TotalCost() decimal.Decimal {
	return l.CostPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a finalized sale.
type Order struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Lines     []Line
}

func (o Order) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func (o Order) TotalCost() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.Lines {
		sum = sum.Add(l.TotalCost())
	}
	return sum
}

// Expense is an operating cost (rent, electricity, wages).
type Expense struct {
	ID         uuid.UUID
	Name       string
	Amount     decimal.Decimal
	IncurredAt time.Time
}

// RestockLine is one purchased item on a restock bill. UnitCost is
// capitalized into inventory and only hits profit when sold;
// AdditionalCost (freight, packaging) reduces profit immediately.
type RestockLine struct {
	Name           string
	Quantity       int
	UnitCost       decimal.Decimal
	AdditionalCost decimal.Decimal
}

// RestockBill is a finalized restock purchase.
type RestockBill struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Lines     []RestockLine
}

// AdditionalCost sums the incurred fees of the bill.
func (b RestockBill) AdditionalCost() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range b.Lines {
		sum = sum.Add(l.AdditionalCost)
	}
	return sum
}
