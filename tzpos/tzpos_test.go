package tzpos

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Rule
	}{
		{
			// Central Europe: +1h standard, +2h DST, last Sunday of
			// March at 02:00, last Sunday of October at 03:00.
			input: "CET-1CEST,M3.5.0,M10.5.0/3",
			want: Rule{
				StdAbbr: "CET", StdOffset: 3600,
				DST: true, DstAbbr: "CEST", DstOffset: 7200,
				Start: DayRule{Form: DayMonthWeek, Month: 3, Week: 5, Weekday: 0, Time: 7200},
				End:   DayRule{Form: DayMonthWeek, Month: 10, Week: 5, Weekday: 0, Time: 3 * 3600},
			},
		},
		{
			input: "EST5EDT,M3.2.0,M11.1.0",
			want: Rule{
				StdAbbr: "EST", StdOffset: -18000,
				DST: true, DstAbbr: "EDT", DstOffset: -14400,
				Start: DayRule{Form: DayMonthWeek, Month: 3, Week: 2, Weekday: 0, Time: 7200},
				End:   DayRule{Form: DayMonthWeek, Month: 11, Week: 1, Weekday: 0, Time: 7200},
			},
		},
		{
			// Omitted DST offset defaults to one hour ahead of standard.
			input: "GMT0BST,M3.5.0/1,M10.5.0",
			want: Rule{
				StdAbbr: "GMT", StdOffset: 0,
				DST: true, DstAbbr: "BST", DstOffset: 3600,
				Start: DayRule{Form: DayMonthWeek, Month: 3, Week: 5, Weekday: 0, Time: 3600},
				End:   DayRule{Form: DayMonthWeek, Month: 10, Week: 5, Weekday: 0, Time: 7200},
			},
		},
		{
			// Negative DST: Ireland's standard time is the summer one.
			input: "IST-1GMT0,M10.5.0,M3.5.0/1",
			want: Rule{
				StdAbbr: "IST", StdOffset: 3600,
				DST: true, DstAbbr: "GMT", DstOffset: 0,
				Start: DayRule{Form: DayMonthWeek, Month: 10, Week: 5, Weekday: 0, Time: 7200},
				End:   DayRule{Form: DayMonthWeek, Month: 3, Week: 5, Weekday: 0, Time: 3600},
			},
		},
		{
			input: "UTC0",
			want:  Rule{StdAbbr: "UTC", StdOffset: 0},
		},
		{
			// Quoted abbreviations and a fractional offset.
			input: "<-03>3",
			want:  Rule{StdAbbr: "-03", StdOffset: -10800},
		},
		{
			input: "IST-5:30",
			want:  Rule{StdAbbr: "IST", StdOffset: 5*3600 + 30*60},
		},
		{
			input: "JST-9",
			want:  Rule{StdAbbr: "JST", StdOffset: 9 * 3600},
		},
		{
			// No explicit rules: defaults to the United States schedule.
			input: "EST5EDT",
			want: Rule{
				StdAbbr: "EST", StdOffset: -18000,
				DST: true, DstAbbr: "EDT", DstOffset: -14400,
				Start: DayRule{Form: DayMonthWeek, Month: 3, Week: 2, Weekday: 0, Time: 7200},
				End:   DayRule{Form: DayMonthWeek, Month: 11, Week: 1, Weekday: 0, Time: 7200},
			},
		},
		{
			// Julian day forms.
			input: "PST8PDT,J60/1,300",
			want: Rule{
				StdAbbr: "PST", StdOffset: -8 * 3600,
				DST: true, DstAbbr: "PDT", DstOffset: -7 * 3600,
				Start: DayRule{Form: DayJulian, Day: 60, Time: 3600},
				End:   DayRule{Form: DayZeroBased, Day: 300, Time: 7200},
			},
		},
		{
			// RFC8536 V3 extended rule time, as used by e.g. Israel data.
			input: "IST-2IDT,M3.4.4/26,M10.5.0",
			want: Rule{
				StdAbbr: "IST", StdOffset: 2 * 3600,
				DST: true, DstAbbr: "IDT", DstOffset: 3 * 3600,
				Start: DayRule{Form: DayMonthWeek, Month: 3, Week: 4, Weekday: 4, Time: 26 * 3600},
				End:   DayRule{Form: DayMonthWeek, Month: 10, Week: 5, Weekday: 0, Time: 7200},
			},
		},
		{
			// Negative rule time.
			input: "<-02>2<-01>,M3.5.0/-1,M10.5.0/0",
			want: Rule{
				StdAbbr: "-02", StdOffset: -7200,
				DST: true, DstAbbr: "-01", DstOffset: -3600,
				Start: DayRule{Form: DayMonthWeek, Month: 3, Week: 5, Weekday: 0, Time: -3600},
				End:   DayRule{Form: DayMonthWeek, Month: 10, Week: 5, Weekday: 0, Time: 0},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := Parse(c.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", c.input, err)
			}
			if diff := cmp.Diff(&c.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"", ErrEmpty},
		{"CET", ErrTruncated},
		{"CE1", ErrAbbrev},
		{"CET-1CEST,", ErrTruncated},
		{"CET-1CEST,M3.5.0", ErrTruncated},
		{"CET-1CEST,M3.5.0,", ErrTruncated},
		{"CET-25", ErrRange},
		{"CET-1:60", ErrRange},
		{"CET-1CEST,M13.5.0,M10.5.0", ErrRange},
		{"CET-1CEST,M3.6.0,M10.5.0", ErrRange},
		{"CET-1CEST,M3.5.7,M10.5.0", ErrRange},
		{"CET-1CEST,J366,M10.5.0", ErrRange},
		{"CET-1CEST,J0,M10.5.0", ErrRange},
		{"CET-1CEST,X3,M10.5.0", ErrDayRule},
		{"CET-1CEST,M3.5.0,M10.5.0/3garbage", ErrDayRule},
		{"CET-x", ErrOffset},
		{"<CET", ErrTruncated},
		{"<>0", ErrAbbrev},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			_, err := Parse(c.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error %v", c.input, c.want)
			}
			if !errors.Is(err, c.want) {
				t.Errorf("Parse(%q) error = %v, want kind %v", c.input, err, c.want)
			}
		})
	}
}

func TestChanges(t *testing.T) {
	cases := []struct {
		name  string
		input string
		year  int
		want  []Change
	}{
		{
			name:  "central europe 2030",
			input: "CET-1CEST,M3.5.0,M10.5.0/3",
			year:  2030,
			want: []Change{
				{At: 1901149200, Offset: 7200, DST: true, Abbrev: "CEST"}, // 2030-03-31 01:00 UTC
				{At: 1919293200, Offset: 3600, Abbrev: "CET"},             // 2030-10-27 01:00 UTC
			},
		},
		{
			name:  "eastern us 2030",
			input: "EST5EDT,M3.2.0,M11.1.0",
			year:  2030,
			want: []Change{
				{At: 1899356400, Offset: -14400, DST: true, Abbrev: "EDT"}, // 2030-03-10 07:00 UTC
				{At: 1919916000, Offset: -18000, Abbrev: "EST"},            // 2030-11-03 06:00 UTC
			},
		},
		{
			// Southern hemisphere: the to-standard switch comes first in
			// the calendar year.
			name:  "sydney 2030",
			input: "AEST-10AEDT,M10.1.0,M4.1.0/3",
			year:  2030,
			want: []Change{
				{At: 1901721600, Offset: 36000, Abbrev: "AEST"},            // 2030-04-06 16:00 UTC
				{At: 1917446400, Offset: 39600, DST: true, Abbrev: "AEDT"}, // 2030-10-05 16:00 UTC
			},
		},
		{
			// Day 365 of the zero-based form exceeds the non-leap year
			// 2030 and rolls into January 1 of 2031.
			name:  "zero-based day 365 in a non-leap year",
			input: "PST8PDT,M3.2.0,365",
			year:  2030,
			want: []Change{
				{At: 1899367200, Offset: -25200, DST: true, Abbrev: "PDT"}, // 2030-03-10 10:00 UTC
				{At: 1925024400, Offset: -28800, Abbrev: "PST"},            // 2031-01-01 09:00 UTC
			},
		},
		{
			name:  "no dst",
			input: "JST-9",
			year:  2030,
			want:  nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse(c.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", c.input, err)
			}
			if diff := cmp.Diff(c.want, r.Changes(c.year)); diff != "" {
				t.Errorf("Changes(%d) mismatch (-want +got):\n%s", c.year, diff)
			}
		})
	}
}

func TestOffsetAt(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		unix       int64
		wantOffset int32
		wantDST    bool
		wantAbbrev string
	}{
		{"berlin winter", "CET-1CEST,M3.5.0,M10.5.0/3", 1894708800, 3600, false, "CET"},  // 2030-01-15
		{"berlin summer", "CET-1CEST,M3.5.0,M10.5.0/3", 1910347200, 7200, true, "CEST"},  // 2030-07-15
		{"berlin start boundary", "CET-1CEST,M3.5.0,M10.5.0/3", 1901149200, 7200, true, "CEST"},
		{"berlin before start", "CET-1CEST,M3.5.0,M10.5.0/3", 1901149199, 3600, false, "CET"},
		{"sydney january", "AEST-10AEDT,M10.1.0,M4.1.0/3", 1894708800, 39600, true, "AEDT"}, // DST across new year
		{"sydney july", "AEST-10AEDT,M10.1.0,M4.1.0/3", 1910347200, 36000, false, "AEST"},
		{"fixed", "JST-9", 1894708800, 9 * 3600, false, "JST"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse(c.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", c.input, err)
			}
			offset, dst, abbrev := r.OffsetAt(c.unix)
			if offset != c.wantOffset || dst != c.wantDST || abbrev != c.wantAbbrev {
				t.Errorf("OffsetAt(%d) = (%d, %v, %s), want (%d, %v, %s)",
					c.unix, offset, dst, abbrev, c.wantOffset, c.wantDST, c.wantAbbrev)
			}
		})
	}
}
