package tzone

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	cet  = Offset{Seconds: 3600, Abbrev: "CET"}
	cest = Offset{Seconds: 7200, DST: true, Abbrev: "CEST"}
)

// berlinTable is a slice of Europe/Berlin's history, late 2021 through
// late 2023.
var berlinTable = Table{
	{At: 1635642000, Offset: cet},  // 2021-10-31 01:00 UTC
	{At: 1648342800, Offset: cest}, // 2022-03-27 01:00 UTC
	{At: 1667091600, Offset: cet},  // 2022-10-30 01:00 UTC
	{At: 1679792400, Offset: cest}, // 2023-03-26 01:00 UTC
	{At: 1698541200, Offset: cet},  // 2023-10-29 01:00 UTC
}

func TestTableOffsetAt(t *testing.T) {
	cases := []struct {
		name string
		unix int64
		want Offset
	}{
		{"between transitions", 1650000000, cest},
		{"on transition", 1667091600, cet},
		{"one before transition", 1667091599, cest},
		{"after last", 1700000000, cet},
		{"before first clamps to first entry", 0, cet},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, berlinTable.OffsetAt(c.unix)); diff != "" {
				t.Errorf("OffsetAt(%d) mismatch (-want +got):\n%s", c.unix, diff)
			}
		})
	}
}

func TestTableBoundaryExactness(t *testing.T) {
	// At every recorded transition the new offset applies exactly from
	// its instant; one second earlier the previous one still holds.
	for i, tr := range berlinTable {
		if got := berlinTable.OffsetAt(tr.At); got != tr.Offset {
			t.Errorf("OffsetAt(%d) = %v, want %v", tr.At, got, tr.Offset)
		}
		if i == 0 {
			continue
		}
		if got, want := berlinTable.OffsetAt(tr.At-1), berlinTable[i-1].Offset; got != want {
			t.Errorf("OffsetAt(%d) = %v, want %v", tr.At-1, got, want)
		}
	}
}

func TestTableIndexMonotonic(t *testing.T) {
	prev := -1
	for unix := int64(1630000000); unix < 1700000000; unix += 999983 {
		i := berlinTable.indexAt(unix)
		if i < prev {
			t.Fatalf("indexAt(%d) = %d, smaller than previous index %d", unix, i, prev)
		}
		prev = i
	}
}

func TestTableValidate(t *testing.T) {
	cases := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"valid", berlinTable, false},
		{"empty", Table{}, true},
		{"duplicate instant", Table{{At: 1, Offset: cet}, {At: 1, Offset: cest}}, true},
		{"descending", Table{{At: 2, Offset: cet}, {At: 1, Offset: cest}}, true},
		{"offset out of range", Table{{At: 1, Offset: Offset{Seconds: 19 * 3600}}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.table.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestOffsetString(t *testing.T) {
	cases := []struct {
		offset Offset
		want   string
	}{
		{cest, "CEST +02:00"},
		{Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}, "EDT -04:00"},
		{Offset{Seconds: 5*3600 + 30*60, Abbrev: "IST"}, "IST +05:30"},
		{Offset{Seconds: 0}, "+00:00"},
	}
	for _, c := range cases {
		if got := c.offset.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
