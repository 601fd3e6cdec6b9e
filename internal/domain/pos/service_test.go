package pos

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranquochuy/sotay-pos/internal/domain/catalog"
	"github.com/tranquochuy/sotay-pos/internal/domain/order"
	"github.com/tranquochuy/sotay-pos/internal/domain/parser"
	"github.com/tranquochuy/sotay-pos/internal/domain/report"
	"github.com/tranquochuy/sotay-pos/internal/repository/memory"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	store.SetCatalog([]catalog.Entry{
		{Name: "Cà Phê", Price: d(30000), CostPrice: d(12000)},
		{Name: "Trà Sữa", Price: d(45000), CostPrice: d(18000)},
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, store, logger), store
}

func TestService_ParseLine(t *testing.T) {
	ctx := context.Background()

	t.Run("resolved sale with catalog cost price", func(t *testing.T) {
		svc, _ := newTestService(t)

		result, err := svc.ParseLine(ctx, "bán 2 ca phe 30k")
		require.NoError(t, err)

		assert.Equal(t, parser.IntentSale, result.Intent)
		assert.True(t, result.Resolved)
		assert.Equal(t, "Cà Phê", result.Line.Name)
		assert.Equal(t, 2, result.Line.Quantity)
		assert.True(t, result.Line.UnitPrice.Equal(d(30000)))
		assert.True(t, result.Line.CostPrice.Equal(d(12000)))
	})

	t.Run("ambiguous intent defaults to sale", func(t *testing.T) {
		svc, _ := newTestService(t)

		result, err := svc.ParseLine(ctx, "2 ca phe 30k")
		require.NoError(t, err)
		assert.Equal(t, parser.IntentSale, result.Intent)
	})

	t.Run("catalog price fills silent price", func(t *testing.T) {
		svc, _ := newTestService(t)

		result, err := svc.ParseLine(ctx, "bán 2 tra sua")
		require.NoError(t, err)
		assert.True(t, result.Resolved)
		assert.True(t, result.Line.UnitPrice.Equal(d(45000)))
	})

	t.Run("history beats catalog price", func(t *testing.T) {
		svc, store := newTestService(t)

		store.AddOrder(order.Order{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			Lines:     []order.Line{{Name: "ca phe", Quantity: 1, UnitPrice: d(28000)}},
		})

		result, err := svc.ParseLine(ctx, "bán ca phe")
		require.NoError(t, err)
		assert.True(t, result.Line.UnitPrice.Equal(d(28000)))
	})

	t.Run("unresolved name carries suggestions", func(t *testing.T) {
		svc, _ := newTestService(t)

		result, err := svc.ParseLine(ctx, "bán 2 nuoc ngot co gas")
		require.NoError(t, err)
		assert.False(t, result.Resolved)
		assert.False(t, result.Line.CatalogLinked)
		assert.Equal(t, "nuoc ngot co gas", result.Line.Name)
	})

	t.Run("unparseable input", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ParseLine(ctx, "bán 2 30k")
		assert.ErrorIs(t, err, parser.ErrNoParse)
	})
}

func TestService_SearchCatalog(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("finds products without diacritics", func(t *testing.T) {
		results, err := svc.SearchCatalog(ctx, "ca phe", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		names := make([]string, 0, len(results))
		for _, r := range results {
			names = append(names, r.Document.Name)
		}
		assert.Contains(t, names, "Cà Phê")
	})

	t.Run("no hits", func(t *testing.T) {
		results, err := svc.SearchCatalog(ctx, "pizza", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestService_ParseRestock(t *testing.T) {
	svc, _ := newTestService(t)

	line, err := svc.ParseRestock(context.Background(), "Nhập 50 hoa hồng giá 5k phí ship 30k")
	require.NoError(t, err)
	assert.Contains(t, line.Name, "hoa hồng")
	assert.Equal(t, 50, line.Quantity)
	assert.True(t, line.UnitCost.Equal(d(5000)))
	assert.True(t, line.AdditionalCost.Equal(d(30000)))
}

func TestService_Report(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	day := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	store.AddOrder(order.Order{
		ID:        uuid.New(),
		CreatedAt: day,
		Lines:     []order.Line{{Name: "Cà Phê", Quantity: 2, UnitPrice: d(30000), CostPrice: d(12000)}},
	})
	store.AddExpense(order.Expense{
		ID: uuid.New(), Name: "điện", Amount: d(50000), IncurredAt: day,
	})
	store.AddRestock(order.RestockBill{
		ID:        uuid.New(),
		CreatedAt: day,
		Lines:     []order.RestockLine{{Name: "hoa hồng", Quantity: 50, UnitCost: d(5000), AdditionalCost: d(30000)}},
	})

	rng := report.Custom(
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC),
	)
	rng.Location = time.UTC

	t.Run("daily stats", func(t *testing.T) {
		stats, err := svc.Report(ctx, rng)
		require.NoError(t, err)
		require.Len(t, stats, 1)

		s := stats[0]
		assert.True(t, s.Revenue.Equal(d(60000)))
		assert.True(t, s.COGS.Equal(d(24000)))
		assert.True(t, s.OperatingCosts.Equal(d(50000)))
		assert.True(t, s.IncurredFees.Equal(d(30000)))
		assert.True(t, s.NetProfit().Equal(d(-44000)))
	})

	t.Run("invalid range", func(t *testing.T) {
		bad := report.Custom(day, day.AddDate(0, 0, -1))
		_, err := svc.Report(ctx, bad)
		assert.ErrorIs(t, err, report.ErrInvalidRange)
	})

	t.Run("csv export", func(t *testing.T) {
		out, err := svc.ExportCSV(ctx, rng)
		require.NoError(t, err)
		text := string(out)
		assert.True(t, strings.HasPrefix(text, "Ngày,Doanh thu"), "unexpected header: %s", text)
		assert.Contains(t, text, "05/03/2026")
	})

	t.Run("excel export", func(t *testing.T) {
		out, err := svc.ExportExcel(ctx, rng)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})
}
