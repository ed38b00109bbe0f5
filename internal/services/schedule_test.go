package services

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{name: "plain month", start: date(2026, time.March, 15), months: 1, want: date(2026, time.April, 15)},
		{name: "jan 31 clamps to feb 28", start: date(2026, time.January, 31), months: 1, want: date(2026, time.February, 28)},
		{name: "jan 31 leap year clamps to feb 29", start: date(2028, time.January, 31), months: 1, want: date(2028, time.February, 29)},
		{name: "mar 31 clamps to apr 30", start: date(2026, time.March, 31), months: 1, want: date(2026, time.April, 30)},
		{name: "crosses year boundary", start: date(2026, time.November, 30), months: 3, want: date(2027, time.February, 28)},
		{name: "twelve months keeps day", start: date(2026, time.May, 31), months: 12, want: date(2027, time.May, 31)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := AddMonthsClamped(test.start, test.months)
			if !got.Equal(test.want) {
				t.Fatalf("AddMonthsClamped(%s, %d) = %s, want %s",
					test.start.Format("2006-01-02"), test.months,
					got.Format("2006-01-02"), test.want.Format("2006-01-02"))
			}
		})
	}
}

func TestAddMonthsClampedNeverOverflowsIntoNextMonth(t *testing.T) {
	start := date(2026, time.January, 31)
	for months := 1; months <= 24; months++ {
		got := AddMonthsClamped(start, months)
		wantMonth := (int(start.Month()) - 1 + months) % 12
		if int(got.Month())-1 != wantMonth {
			t.Fatalf("adding %d months landed in %s", months, got.Month())
		}
	}
}
