package parser

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoParse is returned when nothing usable as a product name remains
// after role assignment. It is the parser's only failure mode: callers
// skip the line or ask the user to rephrase, never crash.
var ErrNoParse = errors.New("parser: no product name in input")

// ParsedLine is the structured result of parsing one utterance.
type ParsedLine struct {
	RawText string
	Name    string

	Quantity  int             // defaults to 1 when undetected
	UnitPrice decimal.Decimal // defaults to 0; callers may backfill from price history

	DiscountValue     decimal.Decimal
	DiscountIsPercent bool

	// PriceDetected distinguishes an explicit 0 from "no price seen",
	// so price-history backfill only kicks in for the latter.
	PriceDetected bool

	PriceContext PriceContext
	Intent       Intent
}

// Parser is safe for concurrent use: Parse is a pure function over its
// input, and the keyword matcher is read-only after construction.
type Parser struct {
	classifier *Classifier
}

// New creates a Parser with the fixed keyword vocabulary compiled.
func New() *Parser {
	return &Parser{classifier: NewClassifier()}
}

// Parse extracts a product name, quantity, price, discount and intent
// from free text.
//
//	"Bán 2 cà phê 30k"      → sale, "cà phê", qty 2, price 30000
//	"Nhập 50 hoa hồng 5k"   → restock, "hoa hồng", qty 50, price 5000
//	"3 trà sữa 50%"         → "trà sữa", qty 3, discount 50%
//
// Malformed numeric tokens degrade to name words; the only error is
// ErrNoParse when no name survives.
func (p *Parser) Parse(text string) (ParsedLine, error) {
	line := ParsedLine{RawText: text, Quantity: 1}

	if strings.TrimSpace(text) == "" {
		return line, ErrNoParse
	}
	tokens := Tokenize(text)
	if tokens == nil {
		return line, ErrNoParse
	}

	line.Intent, line.PriceContext = p.classifier.Classify(text)

	r := newRoleAssignment(tokens)
	r.scanDiscount()
	r.classifyNumbers()
	r.quantityFallback()

	name := r.extractName()
	if name == "" {
		return line, ErrNoParse
	}
	line.Name = name

	if r.quantitySet {
		line.Quantity = r.quantity
	}
	if r.priceSet {
		line.UnitPrice = r.price
		line.PriceDetected = true
	}
	if r.discountSet {
		line.DiscountValue = r.discount
		line.DiscountIsPercent = r.discountPct
	}
	return line, nil
}
