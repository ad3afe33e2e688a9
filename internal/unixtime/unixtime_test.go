package unixtime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dateTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

var cases = []struct {
	dt   dateTime
	unix int64
}{
	{dateTime{1970, 1, 1, 0, 0, 0}, 0},
	{dateTime{2000, 3, 1, 0, 0, 0}, 951868800},
	{dateTime{2023, 10, 29, 2, 30, 0}, 1698546600},
	{dateTime{2024, 2, 29, 12, 0, 0}, 1709208000}, // leap day
	{dateTime{2030, 7, 15, 14, 30, 0}, 1910356200},
	{dateTime{1938, 6, 15, 8, 30, 5}, -995556595}, // pre-epoch
}

func TestFromDateTime(t *testing.T) {
	for _, c := range cases {
		got := FromDateTime(c.dt.Year, c.dt.Month, c.dt.Day, c.dt.Hour, c.dt.Minute, c.dt.Second)
		if got != c.unix {
			t.Errorf("FromDateTime(%+v) = %d, want %d", c.dt, got, c.unix)
		}
	}
}

func TestToDateTime(t *testing.T) {
	for _, c := range cases {
		var got dateTime
		got.Year, got.Month, got.Day, got.Hour, got.Minute, got.Second = ToDateTime(c.unix)
		if diff := cmp.Diff(c.dt, got); diff != "" {
			t.Errorf("ToDateTime(%d) mismatch (-want +got):\n%s", c.unix, diff)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// A coarse sweep across several decades, including pre-epoch.
	for unix := int64(-1e9); unix < 2e9; unix += 86400*13 + 3571 {
		y, mo, d, h, mi, s := ToDateTime(unix)
		if got := FromDateTime(y, mo, d, h, mi, s); got != unix {
			t.Fatalf("round trip %d -> %d-%02d-%02d %02d:%02d:%02d -> %d", unix, y, mo, d, h, mi, s, got)
		}
	}
}
