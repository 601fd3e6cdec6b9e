package parser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// roleAssignment walks the token sequence and assigns each numeric
// token to at most one role: quantity, price, discount, or a consumed
// suffix/currency marker. Token indices are tracked so nothing is
// double-consumed; whatever is left over becomes the product name.
type roleAssignment struct {
	tokens   []Token
	consumed []bool

	quantity    int
	quantitySet bool
	price       decimal.Decimal
	priceSet    bool
	discount    decimal.Decimal
	discountPct bool
	discountSet bool
}

func newRoleAssignment(tokens []Token) *roleAssignment {
	return &roleAssignment{
		tokens:   tokens,
		consumed: make([]bool, len(tokens)),
	}
}

// scanDiscount consumes discount keywords and binds the immediately
// following number, if any, as the discount value.
func (r *roleAssignment) scanDiscount() {
	for i := 0; i < len(r.tokens); i++ {
		if r.consumed[i] {
			continue
		}
		span := discountKeywordAt(r.tokens, i)
		if span == 0 {
			continue
		}
		for j := i; j < i+span; j++ {
			r.consumed[j] = true
		}
		next := i + span
		if next >= len(r.tokens) || r.consumed[next] {
			continue
		}
		num, ok := ParseNumber(r.tokens[next].Lower)
		if !ok {
			continue
		}
		// detached thousand word, same as classifyNumbers ("giảm 5 k")
		if !num.HasShorthand && !num.IsPercent && !num.HasCurrency &&
			next+1 < len(r.tokens) && !r.consumed[next+1] && isThousandWord(r.tokens[next+1].Lower) {
			num.Value = num.Value.Mul(thousand)
			r.consumed[next+1] = true
		}
		if !r.discountSet {
			r.discount = num.Value
			// percent is detected twice (suffix parse and a raw
			// contains check); both kept for compatibility with the
			// original heuristic, treated as one signal
			r.discountPct = num.IsPercent || strings.Contains(r.tokens[next].Lower, "%")
			r.discountSet = true
		}
		r.consumed[next] = true
		i = next
	}
}

// classifyNumbers decides quantity vs price for every remaining numeric
// token. Magnitude and suffix drive the call: values >= 1000, shorthand
// ("30k"), a detached thousand word ("30 k"), a currency marker, or a
// fractional value all read as prices. Small plain integers fill the
// quantity slot first, then the price slot. Slots are first-come-first-
// served and never overwritten; surplus numbers are consumed and
// silently dropped.
func (r *roleAssignment) classifyNumbers() {
	for i := 0; i < len(r.tokens); i++ {
		if r.consumed[i] {
			continue
		}
		num, ok := ParseNumber(r.tokens[i].Lower)
		if !ok {
			continue
		}

		multiSuffix := false
		if !num.HasShorthand && !num.IsPercent && !num.HasCurrency &&
			i+1 < len(r.tokens) && !r.consumed[i+1] && isThousandWord(r.tokens[i+1].Lower) {
			num.Value = num.Value.Mul(thousand)
			multiSuffix = true
		}

		isPercent := num.IsPercent || strings.Contains(r.tokens[i].Lower, "%")

		switch {
		case isPercent:
			if !r.discountSet {
				r.discount = num.Value
				r.discountPct = true
				r.discountSet = true
			}
			r.consumed[i] = true

		case num.Value.GreaterThanOrEqual(thousand) || multiSuffix ||
			num.HasShorthand || num.HasCurrency || !isSmallCount(num.Value):
			if !r.priceSet {
				r.price = num.Value
				r.priceSet = true
			}
			r.consumed[i] = true
			if multiSuffix {
				r.consumed[i+1] = true
			}

		default:
			if !r.quantitySet {
				r.quantity = int(num.Value.IntPart())
				r.quantitySet = true
			} else if !r.priceSet {
				r.price = num.Value
				r.priceSet = true
			}
			r.consumed[i] = true
		}
	}
}

// quantityFallback scans leftover tokens for a bare small integer or a
// Vietnamese number word when no quantity was detected.
func (r *roleAssignment) quantityFallback() {
	if r.quantitySet {
		return
	}
	for i, tok := range r.tokens {
		if r.consumed[i] {
			continue
		}
		if n, err := strconv.Atoi(tok.Lower); err == nil && n >= 1 && n <= 999 {
			r.quantity = n
			r.quantitySet = true
			r.consumed[i] = true
			return
		}
		if n, ok := wordToNumber(tok.Lower); ok {
			r.quantity = n
			r.quantitySet = true
			r.consumed[i] = true
			return
		}
	}
}

// extractName joins the tokens nothing else claimed, in original order,
// skipping classifier vocabulary and filler words.
func (r *roleAssignment) extractName() string {
	var words []string
	for i, tok := range r.tokens {
		if r.consumed[i] || isStopWord(tok.Lower) {
			continue
		}
		words = append(words, tok.Text)
	}
	return strings.Join(words, " ")
}

// isSmallCount reports whether a value can act as a quantity: a whole
// number between 1 and 999.
func isSmallCount(v decimal.Decimal) bool {
	return v.IsInteger() && v.Sign() > 0 && v.LessThan(thousand)
}
