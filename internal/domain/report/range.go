// Package report rolls historical orders, expenses and restock bills
// into per-day profit/loss statistics and exports them.
package report

import (
	"errors"
	"time"
)

// Period selects a predefined reporting window.
type Period int

const (
	PeriodToday Period = iota
	PeriodThisWeek
	PeriodThisMonth
	PeriodThisQuarter
	PeriodCustom
)

// ErrInvalidRange flags a programmer error (start after end), as
// opposed to a window that merely contains no records.
var ErrInvalidRange = errors.New("report: range start is after end")

// Range describes a reporting window. Start/End are only read for
// PeriodCustom and pass through verbatim. Location is the timezone the
// report is generated in; nil means time.Local. SundayWeek switches the
// week period to Sunday-start; the default is the ISO Monday week.
type Range struct {
	Period     Period
	Start, End time.Time
	Location   *time.Location
	SundayWeek bool
}

// Custom builds a verbatim range.
func Custom(start, end time.Time) Range {
	return Range{Period: PeriodCustom, Start: start, End: end}
}

func (r Range) loc() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

// Resolve turns the range into a concrete inclusive [start, end] pair
// relative to now. Predefined periods span local midnight through
// 23:59:59 of their last day.
func (r Range) Resolve(now time.Time) (time.Time, time.Time, error) {
	loc := r.loc()
	now = now.In(loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch r.Period {
	case PeriodToday:
		return midnight, midnight.AddDate(0, 0, 1).Add(-time.Second), nil

	case PeriodThisWeek:
		offset := int(now.Weekday()-time.Monday+7) % 7
		if r.SundayWeek {
			offset = int(now.Weekday())
		}
		start := midnight.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7).Add(-time.Second), nil

	case PeriodThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0).Add(-time.Second), nil

	case PeriodThisQuarter:
		qMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), qMonth, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 3, 0).Add(-time.Second), nil

	case PeriodCustom:
		if r.Start.After(r.End) {
			return time.Time{}, time.Time{}, ErrInvalidRange
		}
		return r.Start, r.End, nil

	default:
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
}
