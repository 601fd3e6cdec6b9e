// Command pos is an interactive shell over the parsing core: type
// sale/restock utterances, get structured lines back, and pull daily
// reports. It keeps records in memory; real deployments plug in their
// own storage.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/tranquochuy/sotay-pos/internal/domain/catalog"
	"github.com/tranquochuy/sotay-pos/internal/domain/order"
	"github.com/tranquochuy/sotay-pos/internal/domain/parser"
	"github.com/tranquochuy/sotay-pos/internal/domain/pos"
	"github.com/tranquochuy/sotay-pos/internal/domain/report"
	"github.com/tranquochuy/sotay-pos/internal/repository/memory"
	"github.com/tranquochuy/sotay-pos/pkg/config"
	poscron "github.com/tranquochuy/sotay-pos/pkg/cron"
	"github.com/tranquochuy/sotay-pos/pkg/money"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	loc := cfg.Location()

	store := memory.NewStore()
	if entries, err := loadCatalog(cfg.CatalogPath); err != nil {
		logger.Warn("catalog not loaded, parsing without resolution", slog.Any("error", err))
	} else {
		store.SetCatalog(entries)
		logger.Info("catalog loaded", slog.Int("products", len(entries)))
	}

	svc := pos.NewService(store, store, logger)

	sched := poscron.NewScheduler(svc, loc, logger)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	ctx := context.Background()
	fmt.Println("sotay-pos — gõ câu bán/nhập hàng, /find <tên>, /report, /export, /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/quit":
			return nil
		case line == "/report":
			printReport(ctx, svc, loc)
		case strings.HasPrefix(line, "/find "):
			printSearch(ctx, svc, strings.TrimSpace(strings.TrimPrefix(line, "/find ")))
		case line == "/export":
			data, err := svc.ExportCSV(ctx, report.Range{Period: report.PeriodThisMonth, Location: loc, SundayWeek: cfg.SundayWeek})
			if err != nil {
				fmt.Println("lỗi xuất báo cáo:", err)
				continue
			}
			os.Stdout.Write(data)
		default:
			handleLine(ctx, svc, store, line)
		}
	}
	return scanner.Err()
}

func handleLine(ctx context.Context, svc *pos.Service, store *memory.Store, text string) {
	result, err := svc.ParseLine(ctx, text)
	if errors.Is(err, parser.ErrNoParse) {
		fmt.Println("không hiểu, thử lại (vd: \"bán 2 cà phê 30k\")")
		return
	}
	if err != nil {
		fmt.Println("lỗi:", err)
		return
	}

	if result.Intent == parser.IntentRestock {
		restock, err := svc.ParseRestock(ctx, text)
		if err != nil {
			fmt.Println("lỗi:", err)
			return
		}
		store.AddRestock(order.RestockBill{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			Lines:     []order.RestockLine{restock},
		})
		fmt.Printf("nhập kho: %d × %s @ %s (phí %s)\n",
			restock.Quantity, restock.Name, vnd(restock.UnitCost), vnd(restock.AdditionalCost))
		return
	}

	store.AddOrder(order.Order{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Lines:     []order.Line{result.Line},
	})
	fmt.Printf("bán: %d × %s @ %s = %s\n",
		result.Line.Quantity, result.Line.Name, vnd(result.Line.UnitPrice), vnd(result.Line.Total()))
	if !result.Resolved && len(result.Suggestions) > 0 {
		fmt.Println("  (không có trong danh mục — ý bạn là:", strings.Join(result.Suggestions, ", "), "?)")
	}
}

func printReport(ctx context.Context, svc *pos.Service, loc *time.Location) {
	stats, err := svc.Report(ctx, report.Range{Period: report.PeriodToday, Location: loc})
	if err != nil {
		fmt.Println("lỗi báo cáo:", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("chưa có giao dịch hôm nay")
		return
	}
	for _, s := range stats {
		fmt.Printf("%s  doanh thu %s  giá vốn %s  lợi nhuận ròng %s (%s%%)\n",
			s.Date.Format("02/01/2006"), vnd(s.Revenue), vnd(s.COGS), vnd(s.NetProfit()), s.ProfitMargin().StringFixed(2))
	}
}

func printSearch(ctx context.Context, svc *pos.Service, query string) {
	results, err := svc.SearchCatalog(ctx, query, 5)
	if err != nil {
		fmt.Println("lỗi tìm kiếm:", err)
		return
	}
	if len(results) == 0 {
		fmt.Println("không tìm thấy sản phẩm nào")
		return
	}
	for _, r := range results {
		fmt.Printf("  %s — %s\n", r.Document.Name, vnd(decimal.NewFromFloat(r.Document.Price)))
	}
}

// vnd renders an amount in the shop currency.
func vnd(v decimal.Decimal) string {
	return money.NewFromDecimal(v, money.VND).Display()
}

func loadCatalog(path string) ([]catalog.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []catalog.Entry
	if err := gocsv.UnmarshalFile(f, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return entries, nil
}
