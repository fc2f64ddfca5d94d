package enums

import "fmt"

// DateRange names the reporting window presets offered by the dashboard.
type DateRange string

const (
	DateRangeAll    DateRange = "all"
	DateRangeToday  DateRange = "today"
	DateRangeWeek   DateRange = "week"
	DateRangeMonth  DateRange = "month"
	DateRangeCustom DateRange = "custom"
)

var validDateRanges = []DateRange{
	DateRangeAll,
	DateRangeToday,
	DateRangeWeek,
	DateRangeMonth,
	DateRangeCustom,
}

// String implements fmt.Stringer.
func (d DateRange) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DateRange.
func (d DateRange) IsValid() bool {
	for _, candidate := range validDateRanges {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDateRange converts raw input into a DateRange. Empty input selects
// the all-time window.
func ParseDateRange(value string) (DateRange, error) {
	if value == "" {
		return DateRangeAll, nil
	}
	for _, candidate := range validDateRanges {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid date range %q", value)
}
