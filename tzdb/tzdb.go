// Package tzdb holds the compiled zone dataset and the process-wide
// zone registry built from it.
//
// The registry is constructed once, on first use, and never mutated
// afterwards, so lookups are safe for unsynchronized concurrent use.
// Lookup is an exact, case-sensitive match against canonical IANA
// identifiers; no alias or case folding is performed here.
package tzdb

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mhartig/tzresolve/tzone"
	"github.com/mhartig/tzresolve/tzpos"
)

var (
	buildOnce sync.Once
	registry  map[string]*tzone.Zone
	names     []string
)

// build constructs the registry from the compiled dataset. The dataset
// is validated offline, so a malformed entry here means the build
// artifact is corrupt and there is nothing sensible to recover to.
func build() {
	registry = make(map[string]*tzone.Zone, len(zones))
	names = make([]string, 0, len(zones))
	for _, def := range zones {
		var rule *tzpos.Rule
		if def.posix != "" {
			var err error
			rule, err = tzpos.Parse(def.posix)
			if err != nil {
				panic(fmt.Sprintf("tzdb: zone %s: bad extension rule: %v", def.name, err))
			}
		}
		z, err := tzone.NewZone(def.name, def.table, rule)
		if err != nil {
			panic(fmt.Sprintf("tzdb: %v", err))
		}
		registry[def.name] = z
		names = append(names, def.name)
	}
	sort.Strings(names)
}

// Lookup returns the zone with the given canonical IANA name, e.g.
// "Europe/Berlin". The second return value reports whether the name is
// known; an unknown name is an ordinary miss, not an error.
func Lookup(name string) (*tzone.Zone, bool) {
	buildOnce.Do(build)
	z, ok := registry[name]
	return z, ok
}

// Names returns all known zone identifiers in lexical order. The
// returned slice is shared; callers must not modify it.
func Names() []string {
	buildOnce.Do(build)
	return names
}
