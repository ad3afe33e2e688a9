// Package windows maps Windows timezone display names to canonical
// IANA identifiers, following the CLDR windowsZones table. The mapping
// is approximate: one Windows name covers several IANA zones and this
// package picks the CLDR default territory ("001") zone.
//
// It is a leaf collaborator of the registry; callers feed the resulting
// name into tzdb.Lookup.
package windows

// displayNames is the subset of the CLDR windowsZones table covering
// the zones shipped in the compiled dataset.
var displayNames = map[string]string{
	"UTC":                            "UTC",
	"W. Europe Standard Time":        "Europe/Berlin",
	"GMT Standard Time":              "Europe/London",
	"Eastern Standard Time":          "America/New_York",
	"E. South America Standard Time": "America/Sao_Paulo",
	"Tokyo Standard Time":            "Asia/Tokyo",
	"India Standard Time":            "Asia/Kolkata",
	"AUS Eastern Standard Time":      "Australia/Sydney",
}

// Lookup translates a Windows display name, e.g. "W. Europe Standard
// Time", to an IANA identifier. The second return value reports whether
// the name is known.
func Lookup(displayName string) (string, bool) {
	iana, ok := displayNames[displayName]
	return iana, ok
}
