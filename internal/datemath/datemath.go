// Package datemath provides calendar arithmetic for resolving day rules
// to concrete dates. It deliberately avoids time.Time so callers control
// how the resulting dates are anchored to an offset.
package datemath

// IsLeapYear determines if the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific year.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// DayOfWeek calculates the day of the week for a given date,
// where 0=Sunday, 1=Monday, ..., 6=Saturday.
func DayOfWeek(year, month, day int) int {
	// Zeller's Congruence algorithm adjustment for Gregorian calendar
	if month < 3 {
		month += 12
		year -= 1
	}
	k := year % 100
	j := year / 100
	h := (day + ((13 * (month + 1)) / 5) + k + (k / 4) + (j / 4) + (5 * j)) % 7
	// Adjust result to fit Sunday=0, Monday=1, ..., Saturday=6
	return (h + 6) % 7
}

// NthWeekday returns the day of the month of the nth occurrence (1-based)
// of the given weekday in the specified month and year. An n of 5 always
// means the last occurrence, matching the POSIX M rule convention, even
// when the month actually contains a fifth occurrence.
func NthWeekday(year, month, n, weekday int) int {
	if n >= 5 {
		return LastWeekday(year, month, weekday)
	}
	firstWeekday := DayOfWeek(year, month, 1)
	offset := (weekday - firstWeekday + 7) % 7
	day := 1 + offset + (n-1)*7
	if last := DaysInMonth(year, month); day > last {
		// A fourth occurrence that does not exist clamps to the last one.
		day -= 7
	}
	return day
}

// LastWeekday finds the last instance of a given weekday in a specific
// month and year.
func LastWeekday(year, month, weekday int) int {
	lastDay := DaysInMonth(year, month)
	lastDayWeekday := DayOfWeek(year, month, lastDay)

	// Days to subtract from the last day to reach the wanted weekday.
	offset := (lastDayWeekday - weekday + 7) % 7
	return lastDay - offset
}

// JulianToDate resolves a POSIX Julian day to a month and day of month.
// If countLeap is false the day is 1-based and February 29 is never
// counted, so day 60 is always March 1 (the POSIX Jn form). If countLeap
// is true the day is 0-based and leap days count (the POSIX n form).
//
// Day 365 of the zero-based form exceeds a non-leap year; the result is
// then December 32, so callers doing linear day arithmetic land on
// January 1 of the following year, matching glibc.
func JulianToDate(year, day int, countLeap bool) (month, dom int) {
	if !countLeap {
		day-- // to 0-based, in a year without a leap day
		if day >= 59 && IsLeapYear(year) {
			day++ // skip over Feb 29
		}
	}
	month = 1
	for month < 12 && day >= DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		month++
	}
	return month, day + 1
}
