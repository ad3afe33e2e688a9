// Package tzone implements the timezone rule engine: immutable per-zone
// transition tables, offset lookup by instant, and resolution of naive
// local date-times including the ambiguous and skipped intervals around
// daylight-saving switches.
//
// Instants are Unix seconds in UTC throughout. A naive local date-time
// is encoded the same way, by computing the Unix timestamp its civil
// fields would have in UTC.
package tzone

import (
	"fmt"
	"math"
	"sort"
)

// Offset is a fixed displacement from UTC together with its display
// abbreviation. Offsets are immutable values.
type Offset struct {
	// Seconds east of UTC. Civil offsets stay within ±18 hours.
	Seconds int32
	// DST reports whether this offset is the daylight-saving variant of
	// its zone.
	DST bool
	// Abbrev is the short designation shown to humans, e.g. "CEST".
	Abbrev string
}

func (o Offset) String() string {
	sign := "+"
	secs := o.Seconds
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	if o.Abbrev == "" {
		return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, secs%3600/60)
	}
	return fmt.Sprintf("%s %s%02d:%02d", o.Abbrev, sign, secs/3600, secs%3600/60)
}

// Transition records that Offset takes effect at instant At.
type Transition struct {
	At     int64
	Offset Offset
}

// Table is a zone's transition history: at least one entry, strictly
// ascending by instant, never mutated after construction.
//
// The offset in effect at an instant t is that of the last transition
// with At <= t. For instants before the first transition the first
// entry's offset applies; the dataset's earliest recorded state is
// treated as reaching arbitrarily far back. This is a deliberate
// simplification for instants the dataset predates.
type Table []Transition

// Validate reports the first violation of the Table invariants.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("table has no entries")
	}
	for i, tr := range t {
		if s := tr.Offset.Seconds; s < -18*3600 || s > 18*3600 {
			return fmt.Errorf("entry %d: offset %d out of civil range", i, s)
		}
		if i > 0 && t[i-1].At >= tr.At {
			return fmt.Errorf("entry %d: instant %d not after %d", i, tr.At, t[i-1].At)
		}
	}
	return nil
}

// OffsetAt returns the offset in effect at the given instant.
func (t Table) OffsetAt(unix int64) Offset {
	return t[t.indexAt(unix)].Offset
}

// indexAt returns the index of the transition governing the instant,
// clamping to the first entry for pre-table instants.
func (t Table) indexAt(unix int64) int {
	// First entry with At > unix; the one before it governs.
	i := sort.Search(len(t), func(i int) bool { return t[i].At > unix })
	if i == 0 {
		return 0
	}
	return i - 1
}

// localStart returns the first wall-clock second at which span i is in
// effect, encoded as a naive instant.
func localStart(t []Transition, i int) int64 {
	if i == 0 {
		return math.MinInt64
	}
	return t[i].At + int64(t[i].Offset.Seconds)
}

// localEnd returns the first wall-clock second no longer covered by
// span i.
func localEnd(t []Transition, i int) int64 {
	if i == len(t)-1 {
		return math.MaxInt64
	}
	return t[i+1].At + int64(t[i].Offset.Seconds)
}

// spanContaining finds a span whose wall-clock window contains the
// naive instant, or -1 if the value falls in a skipped interval.
// Windows of adjacent spans may overlap after a backward clock change;
// any containing span is a valid result and callers inspect neighbors.
func spanContaining(t []Transition, naive int64) int {
	lo, hi := 0, len(t)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case localEnd(t, mid) <= naive:
			lo = mid + 1
		case localStart(t, mid) > naive:
			hi = mid
		default:
			return mid
		}
	}
	return -1
}
