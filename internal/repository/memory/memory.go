// Package memory provides in-memory repository implementations for
// tests, the demo binary and the scheduler. Durable persistence is the
// surrounding application's concern.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tranquochuy/sotay-pos/internal/domain/catalog"
	"github.com/tranquochuy/sotay-pos/internal/domain/order"
)

// Store keeps catalog and historical records behind a mutex. It
// implements catalog.Repository and pos.HistoryRepository.
type Store struct {
	mu       sync.RWMutex
	entries  []catalog.Entry
	orders   []order.Order
	expenses []order.Expense
	restocks []order.RestockBill
	prices   order.PriceHistory
}

func NewStore() *Store {
	return &Store{prices: make(order.PriceHistory)}
}

// SetCatalog replaces the catalog snapshot.
func (s *Store) SetCatalog(entries []catalog.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]catalog.Entry(nil), entries...)
}

// AddOrder records a finalized order and remembers each line's unit
// price as the latest known price for that product name.
func (s *Store) AddOrder(o order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	for _, l := range o.Lines {
		if l.UnitPrice.IsPositive() {
			s.prices[order.HistoryKey(l.Name)] = l.UnitPrice
		}
	}
}

func (s *Store) AddExpense(e order.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

func (s *Store) AddRestock(b order.RestockBill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restocks = append(s.restocks, b)
}

// List implements catalog.Repository.
func (s *Store) List(_ context.Context) ([]catalog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Entry(nil), s.entries...), nil
}

func (s *Store) ListOrders(_ context.Context, start, end time.Time) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []order.Order
	for _, o := range s.orders {
		if within(o.CreatedAt, start, end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) ListExpenses(_ context.Context, start, end time.Time) ([]order.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []order.Expense
	for _, e := range s.expenses {
		if within(e.IncurredAt, start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) ListRestocks(_ context.Context, start, end time.Time) ([]order.RestockBill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []order.RestockBill
	for _, b := range s.restocks {
		if within(b.CreatedAt, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

// PriceHistory returns a copy of the latest-price map.
func (s *Store) PriceHistory(_ context.Context) (order.PriceHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(order.PriceHistory, len(s.prices))
	for k, v := range s.prices {
		out[k] = v
	}
	return out, nil
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
