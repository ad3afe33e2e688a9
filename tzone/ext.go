package tzone

import (
	"time"

	"github.com/mhartig/tzresolve/internal/unixtime"
)

// This file adapts the engine to the standard library's time.Time.
// time.Time is the foreign date-time type; the engine itself only deals
// in instants and offsets.

// Location returns a fixed time.Location displaying this offset.
func (o Offset) Location() *time.Location {
	return time.FixedZone(o.Abbrev, int(o.Seconds))
}

// NaiveUnix encodes the civil fields of t as a naive instant, i.e. the
// Unix timestamp those fields would have in UTC. The location attached
// to t is ignored.
func NaiveUnix(t time.Time) int64 {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	return unixtime.FromDateTime(year, int(month), day, hour, minute, sec)
}

// AssumeZone interprets the civil fields of t as wall-clock time in
// zone z, discarding t's own location. Ambiguous and skipped times
// resolve per opts; the returned time carries the resolved offset as a
// fixed location.
func AssumeZone(t time.Time, z *Zone, opts ResolveOptions) (time.Time, Resolution, error) {
	unix, off, res, err := z.ResolveLocal(NaiveUnix(t), opts)
	if err != nil {
		return time.Time{}, res, err
	}
	return time.Unix(unix, int64(t.Nanosecond())).In(off.Location()), res, nil
}

// ToZone re-expresses the instant t in zone z. The instant is
// unchanged; only the displayed offset moves.
func ToZone(t time.Time, z *Zone) time.Time {
	return t.In(z.OffsetAt(t.Unix()).Location())
}
