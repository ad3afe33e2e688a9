//go:build !linux && !darwin && !windows

package system

// platformZoneName has no probe on this platform; only the TZ
// environment variable is consulted.
func platformZoneName() (string, bool) {
	return "", false
}
