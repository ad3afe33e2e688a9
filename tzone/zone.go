package tzone

import (
	"fmt"

	"github.com/mhartig/tzresolve/internal/unixtime"
	"github.com/mhartig/tzresolve/tzpos"
)

// Zone is a named timezone: its recorded transition history plus an
// optional POSIX rule used to extrapolate past the end of the table.
// A Zone is immutable and safe for unsynchronized concurrent use.
type Zone struct {
	name     string
	table    Table
	extend   *tzpos.Rule
	tableEnd int64 // instants >= tableEnd defer to extend when present
}

// ZoneOption configures zone construction.
type ZoneOption func(*Zone)

// WithTableEnd overrides the instant after which the POSIX extension
// rule takes over from the transition table. The default is the instant
// of the table's final transition.
func WithTableEnd(unix int64) ZoneOption {
	return func(z *Zone) { z.tableEnd = unix }
}

// NewZone validates the table and builds a zone. The table is used as
// given and must not be modified afterwards.
func NewZone(name string, table Table, extend *tzpos.Rule, opts ...ZoneOption) (*Zone, error) {
	if name == "" {
		return nil, fmt.Errorf("zone name must not be empty")
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("zone %s: %w", name, err)
	}
	// The POSIX grammar admits offsets up to 24 hours, wider than the
	// civil range the table invariant enforces. Reject such rules here so
	// OffsetAt never surfaces an offset the table could not hold.
	if extend != nil {
		if s := extend.StdOffset; s < -18*3600 || s > 18*3600 {
			return nil, fmt.Errorf("zone %s: extension rule offset %d out of civil range", name, s)
		}
		if s := extend.DstOffset; extend.DST && (s < -18*3600 || s > 18*3600) {
			return nil, fmt.Errorf("zone %s: extension rule offset %d out of civil range", name, s)
		}
	}
	z := &Zone{
		name:     name,
		table:    table,
		extend:   extend,
		tableEnd: table[len(table)-1].At,
	}
	for _, opt := range opts {
		opt(z)
	}
	return z, nil
}

// Name returns the canonical IANA identifier, e.g. "Europe/Berlin".
func (z *Zone) Name() string { return z.name }

func (z *Zone) String() string { return z.name }

// StandardOffset returns the zone's earliest recorded offset. It is the
// answer for instants predating the table and a reasonable default when
// no instant is available.
func (z *Zone) StandardOffset() Offset {
	return z.table[0].Offset
}

// OffsetAt returns the offset in effect at the given instant. Instants
// beyond the table's range are evaluated against the POSIX extension
// rule when the zone has one; otherwise the final recorded offset is
// treated as permanent.
func (z *Zone) OffsetAt(unix int64) Offset {
	if z.extend != nil && unix >= z.tableEnd {
		secs, dst, abbrev := z.extend.OffsetAt(unix)
		return Offset{Seconds: secs, DST: dst, Abbrev: abbrev}
	}
	return z.table.OffsetAt(unix)
}

// extendedSpans returns the transition sequence governing instants near
// the naive value, splicing rule-computed transitions onto the end of
// the table when the value is beyond it. The result aliases either the
// table or buf, which must hold at least 8 entries.
func (z *Zone) extendedSpans(naive int64, buf []Transition) []Transition {
	// A day of slack covers the largest wall-clock/UTC divergence.
	if z.extend == nil || naive < z.tableEnd-86400 {
		return z.table
	}

	// Anchor on the final recorded transitions so windows that straddle
	// the splice point resolve consistently.
	n := 0
	for _, tr := range z.table[max(0, len(z.table)-2):] {
		buf[n] = tr
		n++
	}
	year, _, _, _, _, _ := unixtime.ToDateTime(naive)
	for y := year - 1; y <= year+1 && n < len(buf); y++ {
		for _, c := range z.extend.Changes(y) {
			if c.At <= buf[n-1].At {
				continue
			}
			buf[n] = Transition{At: c.At, Offset: Offset{Seconds: c.Offset, DST: c.DST, Abbrev: c.Abbrev}}
			n++
			if n == len(buf) {
				break
			}
		}
	}
	return buf[:n]
}
