package services

import "time"

// AddMonthsClamped advances a date by whole calendar months, clamping the day
// to the last day of the target month. Unlike time.AddDate, Jan 31 + 1 month
// yields Feb 28 (or 29), never Mar 2/3.
func AddMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, date.Location()).AddDate(0, months, 0)
	if last := daysInMonth(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return time.Date(anchor.Year(), anchor.Month(), day, 0, 0, 0, 0, date.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}
