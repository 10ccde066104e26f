package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter RequestFilter
		from   string
		to     string
		ok     bool
	}{
		{"no constraint", RequestFilter{}, "", "", false},
		{"all", RequestFilter{DateFilter: DateFilterAll}, "", "", false},
		{"today", RequestFilter{DateFilter: DateFilterToday}, "2026-08-30", "2026-08-30", true},
		{"yesterday", RequestFilter{DateFilter: DateFilterYesterday}, "2026-08-29", "2026-08-29", true},
		{"last 7 days", RequestFilter{DateFilter: DateFilter7Days}, "2026-08-23", "2026-08-30", true},
		{"explicit date", RequestFilter{Date: "2026-06-01"}, "2026-06-01", "2026-06-01", true},
		{"explicit date overrides relative",
			RequestFilter{Date: "2026-06-01", DateFilter: DateFilterToday}, "2026-06-01", "2026-06-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := tt.filter.DateRange(now)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestDateRangeCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	from, to, ok := RequestFilter{DateFilter: DateFilterYesterday}.DateRange(now)
	assert.True(t, ok)
	assert.Equal(t, "2026-08-31", from)
	assert.Equal(t, "2026-08-31", to)

	from, to, ok = RequestFilter{DateFilter: DateFilter7Days}.DateRange(now)
	assert.True(t, ok)
	assert.Equal(t, "2026-08-25", from)
	assert.Equal(t, "2026-09-01", to)
}

func TestFiltersStatus(t *testing.T) {
	assert.False(t, RequestFilter{}.FiltersStatus())
	assert.False(t, RequestFilter{Status: "all"}.FiltersStatus())
	assert.True(t, RequestFilter{Status: "pending"}.FiltersStatus())
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, RequestFilter{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, RequestFilter{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 0, RequestFilter{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 25, RequestFilter{Page: 6, Limit: 5}.Offset())
}
