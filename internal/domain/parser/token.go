// Package parser turns loosely structured Vietnamese POS utterances
// ("Bán 2 cà phê 30k giảm 10%") into structured order lines.
package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Token is a single whitespace-delimited word of the input with its
// original position. Lower is the lowercased form used for matching;
// Text keeps the original casing for name reconstruction.
type Token struct {
	Text  string
	Lower string
	Index int
}

// Number is the result of classifying a token as a numeric value.
// It is a tagged value, not shared parser state.
type Number struct {
	Value        decimal.Decimal
	IsPercent    bool // "50%"
	HasShorthand bool // "30k"
	HasCurrency  bool // "5000đ" / "5000d"
}

// numberPattern matches numeric candidates: digits, an optional single
// decimal/thousands separator, and an optional k/%/đ/d suffix.
var numberPattern = regexp.MustCompile(`(?i)^\d+([.,]\d+)?[k%đd]?$`)

// punctuation acting as a token boundary wherever it appears. '%' is
// deliberately absent: it is a numeric suffix, not a boundary.
const boundaryPunct = ".,;:!?()\"'“”/"

// Tokenize splits trimmed free text into ordered word tokens.
// Punctuation is a boundary anywhere in a word ("cà phê,30k", "20k/ly"),
// except that a separator between two digits stays inside the numeral
// ("30.000", "2,5"). Returns nil for empty or whitespace-only input.
func Tokenize(text string) []Token {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		for _, part := range splitBoundaries(f) {
			tokens = append(tokens, Token{
				Text:  part,
				Lower: strings.ToLower(part),
				Index: len(tokens),
			})
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// splitBoundaries breaks a whitespace field at punctuation, keeping
// numeral separators whose neighbors are both digits.
func splitBoundaries(field string) []string {
	runes := []rune(field)
	var parts []string

	start := 0
	for i, r := range runes {
		if !strings.ContainsRune(boundaryPunct, r) {
			continue
		}
		if (r == '.' || r == ',') && i > 0 && i+1 < len(runes) &&
			unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
			continue
		}
		if i > start {
			parts = append(parts, string(runes[start:i]))
		}
		start = i + 1
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}

// ParseNumber classifies a token as a number, applying the numeral
// shorthand rules: "k" multiplies by 1000, "%" marks a percentage,
// "đ"/"d" is a currency marker with no multiplier. A separator whose
// final digit group has exactly 3 digits is a thousands mark ("2.000"
// → 2000); otherwise a comma is a decimal point ("2,5" → 2.5).
// Returns false for anything that is not a numeric candidate; such
// tokens fall back to being name words.
func ParseNumber(tok string) (Number, bool) {
	tok = strings.ToLower(tok)
	if !numberPattern.MatchString(tok) {
		return Number{}, false
	}

	var n Number
	switch {
	case strings.HasSuffix(tok, "k"):
		n.HasShorthand = true
		tok = strings.TrimSuffix(tok, "k")
	case strings.HasSuffix(tok, "%"):
		n.IsPercent = true
		tok = strings.TrimSuffix(tok, "%")
	case strings.HasSuffix(tok, "đ"):
		n.HasCurrency = true
		tok = strings.TrimSuffix(tok, "đ")
	case strings.HasSuffix(tok, "d"):
		n.HasCurrency = true
		tok = strings.TrimSuffix(tok, "d")
	}

	if i := strings.IndexAny(tok, ".,"); i >= 0 {
		if len(tok)-i-1 == 3 {
			// thousands grouping mark
			tok = tok[:i] + tok[i+1:]
		} else {
			tok = tok[:i] + "." + tok[i+1:]
		}
	}

	value, err := decimal.NewFromString(tok)
	if err != nil {
		// superficially numeric but unparseable; re-classify as a word
		return Number{}, false
	}

	if n.HasShorthand {
		value = value.Mul(decimal.NewFromInt(1000))
	}
	n.Value = value
	return n, true
}

// thousandWords are free-standing tokens that act as a detached "k"
// suffix for the preceding number ("30 k", "30 nghìn").
var thousandWords = map[string]struct{}{
	"k":     {},
	"nghìn": {},
	"nghin": {},
}

func isThousandWord(lower string) bool {
	_, ok := thousandWords[lower]
	return ok
}
