// Package pos is the application facade over the parsing and reporting
// core. It wires the pure functions to injected repositories so callers
// (API handlers, the demo CLI, the scheduler) deal with one surface.
package pos

import (
	"context"
	"log/slog"
	"time"

	"github.com/tranquochuy/sotay-pos/internal/domain/catalog"
	"github.com/tranquochuy/sotay-pos/internal/domain/order"
	"github.com/tranquochuy/sotay-pos/internal/domain/parser"
	"github.com/tranquochuy/sotay-pos/internal/domain/report"
)

// HistoryRepository supplies historical records and the price-history
// snapshot. Persistence is owned by the surrounding application.
type HistoryRepository interface {
	ListOrders(ctx context.Context, start, end time.Time) ([]order.Order, error)
	ListExpenses(ctx context.Context, start, end time.Time) ([]order.Expense, error)
	ListRestocks(ctx context.Context, start, end time.Time) ([]order.RestockBill, error)
	PriceHistory(ctx context.Context) (order.PriceHistory, error)
}

// ParsedLine is the facade result: the built order line plus the
// resolution context callers act on.
type ParsedLine struct {
	Line   order.Line
	Intent parser.Intent // defaulted to sale when the utterance was ambiguous

	// Resolved is false when the catalog matcher found nothing;
	// Suggestions then carries "did you mean" candidates.
	Resolved    bool
	Suggestions []string
}

// Service composes parser, matcher and aggregator with repositories.
type Service struct {
	parser      *parser.Parser
	catalogRepo catalog.Repository
	historyRepo HistoryRepository
	logger      *slog.Logger
}

// NewService creates the facade. logger may not be nil.
func NewService(catalogRepo catalog.Repository, historyRepo HistoryRepository, logger *slog.Logger) *Service {
	return &Service{
		parser:      parser.New(),
		catalogRepo: catalogRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// ParseLine parses one utterance and builds an order line, resolving
// the name against the catalog and backfilling the price from history
// when none was spoken. Repository failures degrade to a free-text
// line rather than failing the parse.
func (s *Service) ParseLine(ctx context.Context, text string) (ParsedLine, error) {
	parsed, err := s.parser.Parse(text)
	if err != nil {
		return ParsedLine{}, err
	}

	entries, history := s.snapshots(ctx)
	matcher := catalog.NewMatcher(entries)

	var match *catalog.Entry
	if entry, ok := matcher.FindBestMatch(parsed.Name); ok {
		match = &entry
	}

	result := ParsedLine{
		Line:     order.BuildLine(parsed, match, history),
		Intent:   parsed.Intent,
		Resolved: match != nil,
	}
	if result.Intent == parser.IntentUnknown {
		result.Intent = parser.IntentSale
	}
	if match == nil {
		result.Suggestions = matcher.Suggest(parsed.Name, 3)
	}

	s.logger.Debug("parsed line",
		slog.String("name", result.Line.Name),
		slog.Int("quantity", result.Line.Quantity),
		slog.String("unit_price", result.Line.UnitPrice.String()),
		slog.String("intent", result.Intent.String()),
		slog.Bool("resolved", result.Resolved),
	)
	return result, nil
}

// ParseRestock parses a restock utterance, splitting incidental fees
// off into AdditionalCost before the core parse.
func (s *Service) ParseRestock(ctx context.Context, text string) (order.RestockLine, error) {
	_, history := s.snapshots(ctx)
	return order.BuildRestockLine(s.parser, text, history)
}

// SearchCatalog runs a full-text product lookup over the current
// catalog snapshot. It backs the manual picker shown when ParseLine
// cannot resolve a name; the index is built per call so catalog updates
// are always visible.
func (s *Service) SearchCatalog(ctx context.Context, query string, limit int) ([]catalog.SearchResult, error) {
	entries, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	index, err := catalog.NewSearchIndex(entries)
	if err != nil {
		return nil, err
	}
	defer func() { _ = index.Close() }()

	results, err := index.Search(query, limit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("catalog search",
		slog.String("query", query),
		slog.Int("hits", len(results)),
	)
	return results, nil
}

// Report generates daily stats for the range from the stored records.
func (s *Service) Report(ctx context.Context, rng report.Range) ([]report.DailyStats, error) {
	loc := time.Local
	if rng.Location != nil {
		loc = rng.Location
	}
	start, end, err := rng.Resolve(time.Now().In(loc))
	if err != nil {
		return nil, err
	}

	orders, err := s.historyRepo.ListOrders(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.historyRepo.ListExpenses(ctx, start, end)
	if err != nil {
		return nil, err
	}
	restocks, err := s.historyRepo.ListRestocks(ctx, start, end)
	if err != nil {
		return nil, err
	}

	window := report.Custom(start, end)
	window.Location = rng.Location
	return report.Generate(orders, expenses, restocks, window)
}

// ExportCSV generates the range report and renders it as CSV bytes.
func (s *Service) ExportCSV(ctx context.Context, rng report.Range) ([]byte, error) {
	stats, err := s.Report(ctx, rng)
	if err != nil {
		return nil, err
	}
	return report.ExportCSV(stats)
}

// ExportExcel generates the range report as an xlsx workbook.
func (s *Service) ExportExcel(ctx context.Context, rng report.Range) ([]byte, error) {
	stats, err := s.Report(ctx, rng)
	if err != nil {
		return nil, err
	}
	return report.ExportExcel(stats)
}

// snapshots fetches the catalog and price history, degrading to empty
// snapshots on repository errors (non-critical for parsing).
func (s *Service) snapshots(ctx context.Context) ([]catalog.Entry, order.PriceHistory) {
	entries, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Warn("catalog unavailable, parsing without resolution", slog.Any("error", err))
		entries = nil
	}
	history, err := s.historyRepo.PriceHistory(ctx)
	if err != nil {
		s.logger.Warn("price history unavailable", slog.Any("error", err))
		history = nil
	}
	return entries, history
}
