package catalog

import (
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
)

// SearchDocument is the indexed shape of a catalog entry. The folded
// name is indexed alongside the display name so queries work with or
// without diacritics.
type SearchDocument struct {
	Name       string  `json:"name"`
	FoldedName string  `json:"folded_name"`
	Barcode    string  `json:"barcode"`
	Price      float64 `json:"price"`
}

// SearchResult is one search hit with its relevance score.
type SearchResult struct {
	Document SearchDocument
	Score    float64
}

// SearchIndex provides full-text product lookup using Bleve. It backs
// the manual product-picker workflow used when the matcher cannot
// resolve a parsed name.
type SearchIndex struct {
	index bleve.Index
	mu    sync.RWMutex
}

// NewSearchIndex creates an in-memory index over the catalog snapshot.
func NewSearchIndex(entries []Entry) (*SearchIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog index: %w", err)
	}

	si := &SearchIndex{index: index}
	if err := si.IndexEntries(entries); err != nil {
		_ = index.Close()
		return nil, err
	}
	return si, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = simple.Name

	keywordFieldMapping := bleve.NewTextFieldMapping()
	keywordFieldMapping.Analyzer = keyword.Name

	numericFieldMapping := bleve.NewNumericFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("name", textFieldMapping)
	docMapping.AddFieldMappingsAt("folded_name", textFieldMapping)
	docMapping.AddFieldMappingsAt("barcode", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("price", numericFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = simple.Name
	return indexMapping
}

// IndexEntries (re)indexes a catalog snapshot in one batch.
func (si *SearchIndex) IndexEntries(entries []Entry) error {
	si.mu.Lock()
	defer si.mu.Unlock()

	batch := si.index.NewBatch()
	for _, e := range entries {
		doc := SearchDocument{
			Name:       e.Name,
			FoldedName: Fold(e.Name),
			Barcode:    e.Barcode,
			Price:      e.Price.InexactFloat64(),
		}
		if err := batch.Index(doc.FoldedName, doc); err != nil {
			return fmt.Errorf("failed to index product %q: %w", e.Name, err)
		}
	}
	if err := si.index.Batch(batch); err != nil {
		return fmt.Errorf("failed to execute batch index: %w", err)
	}
	return nil
}

// Search runs a match query with typo tolerance of one edit.
func (si *SearchIndex) Search(query string, limit int) ([]SearchResult, error) {
	si.mu.RLock()
	defer si.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(Fold(query))
	matchQuery.SetFuzziness(1)

	req := bleve.NewSearchRequest(matchQuery)
	req.Size = limit
	req.Fields = []string{"*"}

	res, err := si.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	return convertResults(res), nil
}

// SearchPrefix is autocomplete-style lookup on the folded name.
func (si *SearchIndex) SearchPrefix(prefix string, limit int) ([]SearchResult, error) {
	si.mu.RLock()
	defer si.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	req := bleve.NewSearchRequest(bleve.NewPrefixQuery(Fold(prefix)))
	req.Size = limit
	req.Fields = []string{"*"}

	res, err := si.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("catalog prefix search failed: %w", err)
	}
	return convertResults(res), nil
}

func convertResults(res *bleve.SearchResult) []SearchResult {
	results := make([]SearchResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		doc := SearchDocument{}
		if name, ok := hit.Fields["name"].(string); ok {
			doc.Name = name
		}
		if folded, ok := hit.Fields["folded_name"].(string); ok {
			doc.FoldedName = folded
		}
		if barcode, ok := hit.Fields["barcode"].(string); ok {
			doc.Barcode = barcode
		}
		if price, ok := hit.Fields["price"].(float64); ok {
			doc.Price = price
		}
		results = append(results, SearchResult{Document: doc, Score: hit.Score})
	}
	return results
}

// DocumentCount returns the number of indexed products.
func (si *SearchIndex) DocumentCount() (uint64, error) {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return si.index.DocCount()
}

// Close releases the index.
func (si *SearchIndex) Close() error {
	si.mu.Lock()
	defer si.mu.Unlock()
	if si.index != nil {
		return si.index.Close()
	}
	return nil
}
