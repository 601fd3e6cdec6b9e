// Package cron provides the daily closing-report job using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tranquochuy/sotay-pos/internal/domain/report"
)

// ReportService is the slice of the pos facade the scheduler needs.
type ReportService interface {
	Report(ctx context.Context, rng report.Range) ([]report.DailyStats, error)
}

// Scheduler runs the end-of-day closing report.
type Scheduler struct {
	cron   *cron.Cron
	svc    ReportService
	loc    *time.Location
	logger *slog.Logger
}

// NewScheduler creates a scheduler in the shop's timezone.
func NewScheduler(svc ReportService, loc *time.Location, logger *slog.Logger) *Scheduler {
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))),
	)
	return &Scheduler{cron: c, svc: svc, loc: loc, logger: logger}
}

// Start registers the closing job at 23:59 local time daily.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("59 23 * * *", s.closeOutDay); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("cron scheduler started", slog.Int("jobs", len(s.cron.Entries())))
	return nil
}

// Stop gracefully stops scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow triggers the closing report manually (admin/testing).
func (s *Scheduler) RunNow() {
	go s.closeOutDay()
}

// closeOutDay generates today's stats and logs the closing summary.
func (s *Scheduler) closeOutDay() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stats, err := s.svc.Report(ctx, report.Range{Period: report.PeriodToday, Location: s.loc})
	if err != nil {
		s.logger.Error("daily closing report failed", slog.Any("error", err))
		return
	}
	if len(stats) == 0 {
		s.logger.Info("daily closing report: no activity today")
		return
	}

	day := stats[0]
	s.logger.Info("daily closing report",
		slog.String("date", day.Date.Format("02/01/2006")),
		slog.String("revenue", day.Revenue.String()),
		slog.String("cogs", day.COGS.String()),
		slog.String("operating_costs", day.OperatingCosts.String()),
		slog.String("incurred_fees", day.IncurredFees.String()),
		slog.String("net_profit", day.NetProfit().String()),
		slog.String("margin", day.ProfitMargin().StringFixed(2)+"%"),
	)
}
