package analytics

import (
	"time"

	"github.com/vogant/storefront-backend/pkg/enums"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
)

// Window specifies the reporting period orders are narrowed to. Start and
// End are only consulted for the custom range; both endpoints are
// inclusive and End is normalized to the end of its day.
type Window struct {
	Range enums.DateRange
	Start *time.Time
	End   *time.Time
}

// WindowAll is the unbounded window.
var WindowAll = Window{Range: enums.DateRangeAll}

// Bounds resolves the window into concrete inclusive endpoints relative to
// now. A nil endpoint means unbounded on that side. Today is the local
// calendar day; week and month are rolling windows anchored at today's
// start of day.
func (w Window) Bounds(now time.Time) (start, end *time.Time, err error) {
	today := startOfDay(now)

	switch w.Range {
	case enums.DateRangeAll, "":
		return nil, nil, nil
	case enums.DateRangeToday:
		return &today, nil, nil
	case enums.DateRangeWeek:
		from := today.AddDate(0, 0, -7)
		return &from, nil, nil
	case enums.DateRangeMonth:
		from := today.AddDate(0, -1, 0)
		return &from, nil, nil
	case enums.DateRangeCustom:
		if w.Start == nil || w.End == nil {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "custom range requires both start and end dates")
		}
		from := *w.Start
		to := endOfDay(*w.End)
		return &from, &to, nil
	default:
		return nil, nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid date range %q", w.Range)
	}
}

// FilterOrders returns the subsequence of orders whose effective date
// falls inside the window, preserving input order. Orders without a
// createdAt are dated "now" and so always survive the preset windows.
func FilterOrders(orders []OrderRecord, w Window, now time.Time) ([]OrderRecord, error) {
	start, end, err := w.Bounds(now)
	if err != nil {
		return nil, err
	}
	if start == nil && end == nil {
		out := make([]OrderRecord, len(orders))
		copy(out, orders)
		return out, nil
	}

	out := make([]OrderRecord, 0, len(orders))
	for _, order := range orders {
		date := order.EffectiveDate(now)
		if start != nil && date.Before(*start) {
			continue
		}
		if end != nil && date.After(*end) {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
