// Package tzpos implements parsing and evaluation of POSIX TZ rule
// strings as defined in Section 8.3 of the "Base Definitions" volume of
// POSIX, with the extended time-of-day range permitted by RFC8536 for
// TZif version 3 footers.
//
// A parsed Rule describes a perpetual, year-independent schedule. It is
// used to extrapolate zone offsets beyond a compiled transition table,
// never to override recorded history.
package tzpos

import (
	"errors"
	"fmt"

	"github.com/mhartig/tzresolve/internal/datemath"
	"github.com/mhartig/tzresolve/internal/unixtime"
)

// Parse failure kinds. Errors returned by Parse wrap exactly one of
// these, so callers can distinguish them with errors.Is.
var (
	ErrEmpty     = errors.New("empty TZ string")
	ErrTruncated = errors.New("truncated TZ string")
	ErrAbbrev    = errors.New("malformed abbreviation")
	ErrOffset    = errors.New("malformed offset")
	ErrDayRule   = errors.New("malformed day rule")
	ErrRange     = errors.New("field out of range")
)

// tznameMax is the longest unquoted abbreviation accepted, matching the
// POSIX TZNAME_MAX lower bound used by common libc implementations.
const tznameMax = 16

// defaultRuleTime is the time of day at which a switch occurs when the
// rule omits it: 02:00:00 local time.
const defaultRuleTime = 2 * 3600

// DayForm selects the encoding of a DayRule.
type DayForm int

const (
	// DayJulian is the POSIX "Jn" form: a 1-based day of year in the
	// range [1, 365] that never counts February 29.
	DayJulian DayForm = iota
	// DayZeroBased is the POSIX "n" form: a 0-based day of year in the
	// range [0, 365] that counts February 29 in leap years.
	DayZeroBased
	// DayMonthWeek is the POSIX "Mm.w.d" form: the w-th occurrence of
	// weekday d in month m, where w=5 means the last occurrence.
	DayMonthWeek
)

// DayRule describes the calendar day and local time of day at which a
// DST switch occurs in any given year.
type DayRule struct {
	Form DayForm

	// Day holds the day of year for the Julian forms.
	Day int

	// Month, Week and Weekday describe the Mm.w.d form.
	// Weekday follows the POSIX convention, 0=Sunday.
	Month, Week, Weekday int

	// Time is the time of day in seconds since local midnight at which
	// the switch occurs, interpreted in the offset that prevails before
	// the switch. RFC8536 V3 footers allow values beyond one day in
	// either direction.
	Time int
}

// Rule is a parsed POSIX TZ string. Offsets follow the civil sign
// convention, seconds east of UTC. The inverted POSIX grammar sign is
// applied during parsing.
type Rule struct {
	StdAbbr   string
	StdOffset int32

	// DST reports whether the rule has a daylight-saving portion.
	// If it does, Start and End are always well-formed.
	DST       bool
	DstAbbr   string
	DstOffset int32
	Start     DayRule
	End       DayRule
}

// Change is a single offset switch computed from a Rule.
type Change struct {
	At     int64 // Unix seconds, UTC
	Offset int32 // civil seconds east of UTC, in effect from At
	DST    bool
	Abbrev string
}

// Changes computes the offset switches the rule produces for the given
// year, ordered by instant. Rules without a DST portion produce none;
// all others produce exactly two. Southern-hemisphere rules yield the
// end switch before the start switch within a calendar year.
func (r *Rule) Changes(year int) []Change {
	if !r.DST {
		return nil
	}
	toDST := Change{
		At:     r.Start.occurrence(year, r.StdOffset),
		Offset: r.DstOffset,
		DST:    true,
		Abbrev: r.DstAbbr,
	}
	toStd := Change{
		At:     r.End.occurrence(year, r.DstOffset),
		Offset: r.StdOffset,
		DST:    false,
		Abbrev: r.StdAbbr,
	}
	if toDST.At <= toStd.At {
		return []Change{toDST, toStd}
	}
	return []Change{toStd, toDST}
}

// OffsetAt evaluates the rule at the given instant.
func (r *Rule) OffsetAt(unix int64) (offset int32, dst bool, abbrev string) {
	if !r.DST {
		return r.StdOffset, false, r.StdAbbr
	}

	// Three years of switches bracket the instant even with large rule
	// times and schedules straddling the new year. The buffer is fixed
	// size to keep evaluation allocation free.
	year, _, _, _, _, _ := unixtime.ToDateTime(unix)
	var buf [6]Change
	n := 0
	for _, y := range [3]int{year - 1, year, year + 1} {
		for _, c := range r.Changes(y) {
			buf[n] = c
			n++
		}
	}

	last := -1
	for i := 0; i < n; i++ {
		if buf[i].At <= unix {
			last = i
		}
	}
	if last < 0 {
		// Before every bracketing switch: the state is the one the first
		// switch leaves, i.e. the opposite portion of the rule.
		if buf[0].DST {
			return r.StdOffset, false, r.StdAbbr
		}
		return r.DstOffset, true, r.DstAbbr
	}
	c := buf[last]
	return c.Offset, c.DST, c.Abbrev
}

// occurrence resolves the day rule to a concrete instant in the given
// year. prev is the civil offset in effect before the switch; per POSIX
// the rule's time of day is local time under that offset.
func (d DayRule) occurrence(year int, prev int32) int64 {
	var month, dom int
	switch d.Form {
	case DayJulian:
		month, dom = datemath.JulianToDate(year, d.Day, false)
	case DayZeroBased:
		month, dom = datemath.JulianToDate(year, d.Day, true)
	case DayMonthWeek:
		month = d.Month
		dom = datemath.NthWeekday(year, d.Month, d.Week, d.Weekday)
	}
	local := unixtime.FromDateTime(year, month, dom, 0, 0, 0) + int64(d.Time)
	return local - int64(prev)
}

// Parse parses a POSIX TZ string according to the grammar
//
//	std offset [ dst [ offset ] [ , start [ / time ] , end [ / time ] ] ]
//
// where a missing dst offset defaults to one hour ahead of standard
// time and missing switch rules default to the United States schedule
// (M3.2.0, M11.1.0), matching common libc behavior.
//
// Note the POSIX grammar counts offsets positive west of UTC; Parse
// inverts them so Rule carries civil offsets, positive east of UTC.
func Parse(s string) (*Rule, error) {
	if s == "" {
		return nil, fmt.Errorf("parse TZ: %w", ErrEmpty)
	}
	p := parser{input: s}

	stdAbbr, err := p.name()
	if err != nil {
		return nil, p.fail(err)
	}
	stdPosix, err := p.offset()
	if err != nil {
		return nil, p.fail(err)
	}

	r := &Rule{
		StdAbbr:   stdAbbr,
		StdOffset: int32(-stdPosix),
	}
	if p.eof() {
		return r, nil
	}

	dstAbbr, err := p.name()
	if err != nil {
		return nil, p.fail(err)
	}
	r.DST = true
	r.DstAbbr = dstAbbr
	r.DstOffset = r.StdOffset + 3600
	if !p.eof() && p.peek() != ',' {
		dstPosix, err := p.offset()
		if err != nil {
			return nil, p.fail(err)
		}
		r.DstOffset = int32(-dstPosix)
	}

	if p.eof() {
		// No explicit switch rules.
		r.Start = DayRule{Form: DayMonthWeek, Month: 3, Week: 2, Weekday: 0, Time: defaultRuleTime}
		r.End = DayRule{Form: DayMonthWeek, Month: 11, Week: 1, Weekday: 0, Time: defaultRuleTime}
		return r, nil
	}

	if err := p.expect(','); err != nil {
		return nil, p.fail(err)
	}
	if r.Start, err = p.dayRule(); err != nil {
		return nil, p.fail(err)
	}
	if err := p.expect(','); err != nil {
		return nil, p.fail(err)
	}
	if r.End, err = p.dayRule(); err != nil {
		return nil, p.fail(err)
	}
	if !p.eof() {
		return nil, p.fail(fmt.Errorf("trailing input: %w", ErrDayRule))
	}
	return r, nil
}
