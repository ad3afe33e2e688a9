package tzone

import (
	"errors"
	"sort"
)

// ErrInvalidLocalTime reports a naive date-time that never occurred on a
// zone's civil clocks because it falls inside a forward clock change,
// under GapReject policy.
var ErrInvalidLocalTime = errors.New("invalid local time: skipped by clock change")

// Kind classifies the resolution of a naive local date-time.
type Kind int

const (
	// Unique means exactly one offset makes the local time self
	// consistent, the normal case away from transitions.
	Unique Kind = iota
	// AmbiguousTime means the local time occurred twice because clocks
	// moved backward across it.
	AmbiguousTime
	// GapTime means the local time never occurred because clocks moved
	// forward across it.
	GapTime
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case AmbiguousTime:
		return "ambiguous"
	case GapTime:
		return "gap"
	default:
		return "unknown"
	}
}

// Resolution is the structured outcome of interpreting a naive local
// date-time in a zone.
//
// For Unique, First holds the single applicable offset and Second
// equals First. For AmbiguousTime, First is the offset yielding the
// earlier instant (the pre-transition offset) and Second the later one.
// For GapTime, First is the offset in effect before the skipped
// interval and Second the one after; neither round-trips.
type Resolution struct {
	Kind   Kind
	First  Offset
	Second Offset
}

// AmbiguousPolicy selects which of two valid instants an ambiguous
// local time resolves to.
type AmbiguousPolicy int

const (
	// EarliestInstant picks the earlier instant, i.e. the offset in
	// effect before the backward transition.
	EarliestInstant AmbiguousPolicy = iota
	// LatestInstant picks the later instant, i.e. the offset in effect
	// after the backward transition.
	LatestInstant
)

// Overlaps only arise when the UTC offset decreases, so the earlier
// instant always carries the pre-transition offset and the later one
// the post-transition offset. These names make that selection explicit.
const (
	PreTransition  = EarliestInstant
	PostTransition = LatestInstant
)

// GapPolicy selects how a local time inside a skipped interval is
// handled.
type GapPolicy int

const (
	// GapReject refuses to resolve skipped local times and surfaces
	// ErrInvalidLocalTime.
	GapReject GapPolicy = iota
	// GapShiftForward moves the local time forward by the width of the
	// skipped interval, landing on the first valid wall-clock second at
	// or after it with the post-transition offset.
	GapShiftForward
)

// ResolveOptions bundles the policies for ResolveLocal. The zero value
// picks the earliest instant for ambiguous times and rejects skipped
// ones.
type ResolveOptions struct {
	Ambiguous AmbiguousPolicy
	Gap       GapPolicy
}

// OffsetsAtLocal determines which offsets can apply to a naive local
// date-time, given as the Unix timestamp its civil fields would have in
// UTC. It consults the POSIX extension rule for values beyond the
// transition table.
func (z *Zone) OffsetsAtLocal(naive int64) Resolution {
	var buf [8]Transition
	spans := z.extendedSpans(naive, buf[:])
	return resolveSpans(spans, naive)
}

// ResolveLocal interprets a naive local date-time in the zone and
// returns the resolved instant and its offset. Ambiguous times resolve
// per opts.Ambiguous; skipped times resolve per opts.Gap, where
// GapReject yields ErrInvalidLocalTime. The returned Resolution always
// describes the raw outcome so callers can detect that a policy fired.
func (z *Zone) ResolveLocal(naive int64, opts ResolveOptions) (unix int64, off Offset, res Resolution, err error) {
	res = z.OffsetsAtLocal(naive)
	switch res.Kind {
	case Unique:
		off = res.First
	case AmbiguousTime:
		if opts.Ambiguous == LatestInstant {
			off = res.Second
		} else {
			off = res.First
		}
	case GapTime:
		if opts.Gap == GapReject {
			return 0, Offset{}, res, ErrInvalidLocalTime
		}
		// Shifting forward by the gap width lands on the transition
		// instant: naive + (second-first) - second == naive - first.
		return naive - int64(res.First.Seconds), res.Second, res, nil
	}
	return naive - int64(off.Seconds), off, res, nil
}

// resolveSpans runs the candidate-offset computation over a transition
// sequence. Spans are the half-open intervals between transitions; a
// naive value contained by two overlapping wall-clock windows is
// ambiguous, one covered by none is skipped.
func resolveSpans(t []Transition, naive int64) Resolution {
	i := spanContaining(t, naive)
	if i < 0 {
		// Skipped interval. The first span whose window starts after
		// the naive value is the post-transition side; span 0 starts at
		// the beginning of time, so j >= 1.
		j := sort.Search(len(t), func(j int) bool { return localStart(t, j) > naive })
		return Resolution{Kind: GapTime, First: t[j-1].Offset, Second: t[j].Offset}
	}
	if i > 0 && localEnd(t, i-1) > naive {
		return Resolution{Kind: AmbiguousTime, First: t[i-1].Offset, Second: t[i].Offset}
	}
	if i < len(t)-1 && localStart(t, i+1) <= naive {
		return Resolution{Kind: AmbiguousTime, First: t[i].Offset, Second: t[i+1].Offset}
	}
	return Resolution{Kind: Unique, First: t[i].Offset, Second: t[i].Offset}
}
