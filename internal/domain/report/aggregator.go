package report

import (
	"sort"
	"time"

	"github.com/tranquochuy/sotay-pos/internal/domain/order"
)

// Generate buckets the given records by local calendar day over the
// resolved range and returns daily stats sorted by date descending.
// Orders contribute revenue and COGS, expenses contribute operating
// costs, and restock bills contribute only their incidental fees
// (purchase cost enters COGS when the stock is later sold). An empty
// window yields an empty slice, not an error.
func Generate(orders []order.Order, expenses []order.Expense, restocks []order.RestockBill, rng Range) ([]DailyStats, error) {
	loc := rng.loc()
	start, end, err := rng.Resolve(time.Now().In(loc))
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*DailyStats)
	bucket := func(t time.Time) *DailyStats {
		local := t.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		if s, ok := buckets[day]; ok {
			return s
		}
		s := &DailyStats{Date: day}
		buckets[day] = s
		return s
	}
	inRange := func(t time.Time) bool {
		return !t.Before(start) && !t.After(end)
	}

	for _, o := range orders {
		if !inRange(o.CreatedAt) {
			continue
		}
		s := bucket(o.CreatedAt)
		s.Revenue = s.Revenue.Add(o.Total())
		s.COGS = s.COGS.Add(o.TotalCost())
	}

	for _, e := range expenses {
		if !inRange(e.IncurredAt) {
			continue
		}
		s := bucket(e.IncurredAt)
		s.OperatingCosts = s.OperatingCosts.Add(e.Amount)
	}

	for _, b := range restocks {
		if !inRange(b.CreatedAt) {
			continue
		}
		s := bucket(b.CreatedAt)
		s.IncurredFees = s.IncurredFees.Add(b.AdditionalCost())
	}

	stats := make([]DailyStats, 0, len(buckets))
	for _, s := range buckets {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date.After(stats[j].Date)
	})
	return stats, nil
}
