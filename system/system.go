// Package system discovers the host's configured timezone name. It
// returns only the IANA identifier string; resolving it to a zone goes
// through the regular registry lookup, keeping all platform specifics
// behind this one narrow interface.
package system

import "os"

// ZoneName reports the IANA identifier of the system timezone, e.g.
// "Europe/Berlin". The TZ environment variable wins when set; otherwise
// a platform-specific probe runs. The second return value is false when
// no timezone could be determined.
//
// A set-but-empty TZ means UTC by POSIX convention. A leading colon,
// the POSIX "implementation-defined" marker commonly used for zone
// names, is stripped.
func ZoneName() (string, bool) {
	if tz, found := os.LookupEnv("TZ"); found {
		if tz == "" {
			return "UTC", true
		}
		if tz[0] == ':' {
			tz = tz[1:]
		}
		return tz, true
	}
	return platformZoneName()
}
