// Package catalog resolves free-text product names against the known
// product catalog using exact, substring and Levenshtein matching over
// diacritic-folded names.
package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// Entry is one product in the catalog. Entries are a read-only snapshot
// owned by the storage collaborator; nothing in this package mutates
// them. The csv tags support loading a catalog file with gocsv.
type Entry struct {
	Name      string          `csv:"name" json:"name"`
	Price     decimal.Decimal `csv:"price" json:"price"`
	CostPrice decimal.Decimal `csv:"cost_price" json:"cost_price"`
	Barcode   string          `csv:"barcode" json:"barcode,omitempty"`
}

// Repository supplies catalog snapshots. Persistence lives outside the
// core; implementations are injected.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
}
