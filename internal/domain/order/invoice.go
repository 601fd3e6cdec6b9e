package order

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tranquochuy/sotay-pos/internal/domain/parser"
)

// feePattern matches incidental-fee phrases on restock utterances:
// "phí ship 30k", "phí vận chuyển 20k", "ship 15k". The amount reuses
// the parser's numeral shorthand.
var feePattern = regexp.MustCompile(`(?i)(?:phí\s+vận\s+chuyển|phi\s+van\s+chuyen|phí\s+ship|phi\s+ship|ship)\s+(\d+(?:[.,]\d+)?[kđd]?)`)

// ExtractFee strips fee phrases from a restock utterance and returns
// the cleaned text plus the summed fee amount. Running this before the
// core parse keeps fee numbers from stealing the price or quantity
// slots ("Nhập 50 hoa hồng giá 5k phí ship 30k" must stay qty 50,
// unit 5000).
func ExtractFee(text string) (string, decimal.Decimal) {
	fee := decimal.Zero

	matches := feePattern.FindAllStringSubmatch(text, -1)
	for _, m := range matches {
		if num, ok := parser.ParseNumber(m[1]); ok && !num.IsPercent {
			fee = fee.Add(num.Value)
		}
	}
	if len(matches) == 0 {
		return text, fee
	}

	cleaned := feePattern.ReplaceAllString(text, " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return cleaned, fee
}

// BuildRestockLine parses a restock utterance into a restock line,
// extracting incidental fees first. The detected price becomes the unit
// purchase cost; the price history fills in when none was spoken.
func BuildRestockLine(p *parser.Parser, text string, history PriceHistory) (RestockLine, error) {
	cleaned, fee := ExtractFee(text)

	parsed, err := p.Parse(cleaned)
	if err != nil {
		return RestockLine{}, err
	}

	unitCost := parsed.UnitPrice
	if !parsed.PriceDetected {
		if price, ok := history[HistoryKey(parsed.Name)]; ok {
			unitCost = price
		}
	}

	return RestockLine{
		Name:           parsed.Name,
		Quantity:       parsed.Quantity,
		UnitCost:       unitCost,
		AdditionalCost: fee,
	}, nil
}
