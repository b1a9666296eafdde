// Package calendar projects mixed-kind calendar events (bills and pay
// periods) into one filterable timeline. Projection is a pure transform:
// it always re-derives from the latest snapshot and never patches its own
// output after a mutation.
package calendar

import (
	"fmt"
	"time"

	"github.com/vitaminR/autobudget/internal/domain"
)

// Color tokens for bill classes and pay periods.
const (
	ColorDebt      = "#c0392b"
	ColorCritical  = "#e74c3c"
	ColorNeeded    = "#f1c40f"
	ColorComfort   = "#3498db"
	ColorEssential = "#e67e22"
	ColorPayPeriod = "#2ecc71"
	ColorFallback  = "#95a5a6"
)

// Filters selects which event kinds appear on the timeline. UnpaidOnly
// applies to bill events only; pay periods are unaffected by it.
type Filters struct {
	ShowBills      bool
	ShowPayPeriods bool
	UnpaidOnly     bool
}

// DefaultFilters shows everything.
func DefaultFilters() Filters {
	return Filters{ShowBills: true, ShowPayPeriods: true}
}

// TimelineEvent is one renderable entry on the unified timeline. All
// fields are derived; none persist.
type TimelineEvent struct {
	Source domain.CalendarEvent

	Start  time.Time
	End    time.Time
	AllDay bool
	Color  string
	Title  string
}

// Project filters and normalizes raw events into timeline entries,
// preserving input order. Pure function.
func Project(events []domain.CalendarEvent, f Filters) []TimelineEvent {
	var out []TimelineEvent
	for _, ev := range events {
		if ev.Kind == domain.EventBill {
			if !f.ShowBills {
				continue
			}
			if f.UnpaidOnly && ev.Paid {
				continue
			}
		} else if !f.ShowPayPeriods {
			continue
		}
		out = append(out, normalize(ev))
	}
	return out
}

func normalize(ev domain.CalendarEvent) TimelineEvent {
	te := TimelineEvent{
		Source: ev,
		Color:  ColorFor(ev),
		Title:  ev.Title,
	}

	if ev.Kind == domain.EventBill {
		// A bill is a single-day, non-all-day event on its due date.
		if ev.Date != nil {
			te.Start = ev.Date.Time
			te.End = ev.Date.Time
		}
		if ev.Amount != nil {
			te.Title = fmt.Sprintf("%s — $%s", ev.Title, ev.Amount.StringFixed(2))
		}
		return te
	}

	te.AllDay = true
	if ev.StartDate != nil {
		te.Start = ev.StartDate.Time
	}
	if ev.EndDate != nil {
		te.End = ev.EndDate.Time
	}
	return te
}

// ColorFor maps an event to its color token. The mapping is total: every
// bill class, including ones this client has never seen, resolves to some
// color, never to an empty string.
func ColorFor(ev domain.CalendarEvent) string {
	if ev.Kind == domain.EventBill {
		switch ev.BillClass {
		case domain.ClassDebt:
			return ColorDebt
		case domain.ClassCritical:
			return ColorCritical
		case domain.ClassNeeded:
			return ColorNeeded
		case domain.ClassComfort:
			return ColorComfort
		case domain.ClassEssential:
			return ColorEssential
		}
		if ev.Color != "" {
			return ev.Color
		}
		return ColorFallback
	}
	if ev.Color != "" {
		return ev.Color
	}
	return ColorPayPeriod
}
