package model

import "time"

// DateFilter selects a relative date window for the request list.
type DateFilter string

const (
	DateFilterAll       DateFilter = "all"
	DateFilterToday     DateFilter = "today"
	DateFilterYesterday DateFilter = "yesterday"
	DateFilter7Days     DateFilter = "7days"
)

// DefaultPageSize is the fixed page size for the request list.
const DefaultPageSize = 10

// RequestFilter is the server-side filter for the meeting-request list.
// All predicates are AND-combined. An explicit Date overrides DateFilter.
// Limit == 0 disables pagination, which the CSV export relies on so the
// exported rows are exactly the filtered set.
type RequestFilter struct {
	Search     string
	Status     string // "all" or one of the MeetingStatus values
	DateFilter DateFilter
	Date       string // explicit YYYY-MM-DD date
	Page       int
	Limit      int
}

// FiltersStatus reports whether the filter narrows by status.
func (f RequestFilter) FiltersStatus() bool {
	return f.Status != "" && f.Status != "all"
}

// DateRange resolves the filter's date window against now, returning the
// inclusive [from, to] bounds as wire-format dates. ok is false when the
// filter does not constrain dates. The window is recomputed on every call so
// "today" always means the current calendar day at evaluation time.
func (f RequestFilter) DateRange(now time.Time) (from, to string, ok bool) {
	if f.Date != "" {
		return f.Date, f.Date, true
	}
	today := now.Format(DateLayout)
	switch f.DateFilter {
	case DateFilterToday:
		return today, today, true
	case DateFilterYesterday:
		y := now.AddDate(0, 0, -1).Format(DateLayout)
		return y, y, true
	case DateFilter7Days:
		return now.AddDate(0, 0, -7).Format(DateLayout), today, true
	}
	return "", "", false
}

// Offset returns the row offset for the current page.
func (f RequestFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}
