package tzone

import "time"

// Zoned pairs an instant with the Zone it is viewed in, so the correct
// offset follows the value around instead of being resolved at every
// call site.
type Zoned struct {
	t    time.Time
	zone *Zone
}

// FromInstant views the instant t in zone z.
func FromInstant(t time.Time, z *Zone) Zoned {
	return Zoned{t: ToZone(t, z), zone: z}
}

// FromLocal interprets the civil fields of t as wall clock time in zone
// z, resolving ambiguous and skipped times per opts.
func FromLocal(t time.Time, z *Zone, opts ResolveOptions) (Zoned, error) {
	resolved, _, err := AssumeZone(t, z, opts)
	if err != nil {
		return Zoned{}, err
	}
	return Zoned{t: resolved, zone: z}, nil
}

// Time returns the instant with the zone's offset attached as a fixed
// location.
func (zd Zoned) Time() time.Time { return zd.t }

// Zone returns the zone the value is viewed in.
func (zd Zoned) Zone() *Zone { return zd.zone }

// Offset returns the zone offset in effect at the instant.
func (zd Zoned) Offset() Offset { return zd.zone.OffsetAt(zd.t.Unix()) }

// In re-expresses the same instant in another zone.
func (zd Zoned) In(z *Zone) Zoned { return FromInstant(zd.t, z) }

// Add advances the instant by d and re-resolves the offset, so crossing
// a transition updates the displayed wall clock correctly.
func (zd Zoned) Add(d time.Duration) Zoned {
	return FromInstant(zd.t.Add(d), zd.zone)
}

// Equal reports whether both values denote the same instant, regardless
// of zone.
func (zd Zoned) Equal(other Zoned) bool { return zd.t.Equal(other.t) }

func (zd Zoned) String() string {
	return zd.t.Format("2006-01-02 15:04:05 -07:00") + " [" + zd.zone.Name() + "]"
}
