package domain

import "time"

// ComposeDateTime combines OMNI time components (year, ordinal day-of-year,
// hour, minute) into a UTC instant. It mirrors strict "%Y-%j-%H-%M" parsing:
// any component outside its calendar range yields the zero time, never an
// error, so one malformed row cannot affect its siblings.
func ComposeDateTime(year, day, hour, minute int) time.Time {
	if year < 1 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}
	}
	if day < 1 || day > daysInYear(year) {
		return time.Time{}
	}

	jan1 := time.Date(year, time.January, 1, hour, minute, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, day-1)
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
