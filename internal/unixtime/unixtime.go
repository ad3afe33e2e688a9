// Package unixtime converts between Unix timestamps and civil date-time
// fields without going through time.Location. The rule engine resolves
// offsets itself, so depending on time.Location here would be circular.
// It ignores leap seconds but respects leap years and assumes the
// proleptic Gregorian calendar.
package unixtime

// FromDateTime converts a given date and time to a Unix timestamp, i.e. the
// number of seconds since 1970-01-01 00:00:00 UTC.
// This implementation is based on the Go standard library's time package.
func FromDateTime(year int, month int, day int, hour int, minute int, second int) int64 {
	daysSinceStartOfYear := []uint64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

	d := daysSinceEpoch(year) + daysSinceStartOfYear[month-1] + (uint64(day) - 1)
	if month > 2 && (year%4 == 0 && (year%100 != 0 || year%400 == 0)) {
		d++ // +leap year
	}
	abs := d*secondsPerDay + uint64(hour)*secondsPerHour + uint64(minute)*secondsPerMinute + uint64(second)
	unix := int64(abs) + (absoluteToInternal + internalToUnix)
	return unix
}

// ToDateTime is the inverse of FromDateTime. It splits a Unix timestamp
// into civil date and time-of-day fields.
// The date part uses Howard Hinnant's civil_from_days algorithm.
func ToDateTime(unix int64) (year int, month int, day int, hour int, minute int, second int) {
	days := floorDiv(unix, secondsPerDay)
	rem := unix - days*secondsPerDay

	hour = int(rem / secondsPerHour)
	minute = int(rem % secondsPerHour / secondsPerMinute)
	second = int(rem % secondsPerMinute)

	z := days + 719468 // shift epoch from 1970-01-01 to 0000-03-01
	era := floorDiv(z, 146097)
	doe := z - era*146097                                  // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // [0, 365]
	mp := (5*doy + 2) / 153                                // [0, 11]
	day = int(doy - (153*mp+2)/5 + 1)
	month = int(mp)
	if mp < 10 {
		month += 3
	} else {
		month -= 9
	}
	year = int(yoe + era*400)
	if month <= 2 {
		year++
	}
	return year, month, day, hour, minute, second
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// The constants were copied from time.go in the Go standard library's time package.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
