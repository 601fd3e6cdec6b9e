package parser

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Intent says whether an utterance records a sale (outgoing stock) or a
// restock (incoming stock).
type Intent int

const (
	IntentUnknown Intent = iota
	IntentSale
	IntentRestock
)

func (i Intent) String() string {
	switch i {
	case IntentSale:
		return "sale"
	case IntentRestock:
		return "restock"
	default:
		return "unknown"
	}
}

// PriceContext says whether a detected price is per unit or for the
// whole line.
type PriceContext int

const (
	PriceContextUnknown PriceContext = iota
	PriceContextTotal
	PriceContextUnit
)

func (p PriceContext) String() string {
	switch p {
	case PriceContextTotal:
		return "total"
	case PriceContextUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Fixed keyword vocabulary. The sets themselves are the contract: do not
// extend them without revisiting name extraction, which filters the same
// words out of product names.
var (
	restockKeywords  = []string{"nhập", "mua thêm", "restock", "về kho", "nhập kho"}
	saleKeywords     = []string{"bán", "khách mua", "order", "tính tiền", "lên đơn", "tạo đơn"}
	totalKeywords    = []string{"tổng", "hết", "thành tiền", "total", "sum"}
	unitKeywords     = []string{"mỗi", "từng", "unit", "each", "per", "/"}
	discountKeywords = []string{"giảm", "off", "bớt", "chiết khấu", "discount", "km"}
	fillerWords      = []string{"cho", "của", "với", "lấy"}
)

type keywordFamily int

const (
	familyRestock keywordFamily = iota
	familySale
	familyTotal
	familyUnit
)

// Classifier detects transaction intent and price context by scanning
// the lowercased full text for the fixed keyword sets. All patterns go
// into a single Aho-Corasick matcher so the scan is one pass regardless
// of vocabulary size.
type Classifier struct {
	matcher  *ahocorasick.Matcher
	families []keywordFamily
}

// NewClassifier builds the keyword matcher.
func NewClassifier() *Classifier {
	var patterns []string
	var families []keywordFamily

	add := func(words []string, f keywordFamily) {
		for _, w := range words {
			patterns = append(patterns, w)
			families = append(families, f)
		}
	}
	add(restockKeywords, familyRestock)
	add(saleKeywords, familySale)
	add(totalKeywords, familyTotal)
	add(unitKeywords, familyUnit)

	return &Classifier{
		matcher:  ahocorasick.NewStringMatcher(patterns),
		families: families,
	}
}

// Classify is a pure function over the input text. Ties are resolved by
// the documented rule: if both families of a pair match, the result is
// unknown and the caller picks its default (sale, and unit pricing).
func (c *Classifier) Classify(text string) (Intent, PriceContext) {
	lower := strings.ToLower(text)

	var restock, sale, total, unit bool
	for _, idx := range c.matcher.Match([]byte(lower)) {
		if idx < 0 || idx >= len(c.families) {
			continue
		}
		switch c.families[idx] {
		case familyRestock:
			restock = true
		case familySale:
			sale = true
		case familyTotal:
			total = true
		case familyUnit:
			unit = true
		}
	}

	intent := IntentUnknown
	switch {
	case restock && !sale:
		intent = IntentRestock
	case sale && !restock:
		intent = IntentSale
	}

	pctx := PriceContextUnknown
	switch {
	case total && !unit:
		pctx = PriceContextTotal
	case unit && !total:
		pctx = PriceContextUnit
	}

	return intent, pctx
}

// stopWords are the individual words of every intent, price-context and
// filler keyword. Tokens matching them never become part of a product
// name.
var stopWords = buildStopWords()

func buildStopWords() map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range [][]string{restockKeywords, saleKeywords, totalKeywords, unitKeywords, fillerWords} {
		for _, kw := range group {
			for _, word := range strings.Fields(kw) {
				set[word] = struct{}{}
			}
		}
	}
	return set
}

func isStopWord(lower string) bool {
	_, ok := stopWords[lower]
	return ok
}

// discountKeywordAt reports how many tokens starting at i form a
// discount keyword (0 if none). "chiết khấu" spans two tokens.
func discountKeywordAt(tokens []Token, i int) int {
	for _, kw := range discountKeywords {
		words := strings.Fields(kw)
		if i+len(words) > len(tokens) {
			continue
		}
		match := true
		for j, w := range words {
			if tokens[i+j].Lower != w {
				match = false
				break
			}
		}
		if match {
			return len(words)
		}
	}
	return 0
}
