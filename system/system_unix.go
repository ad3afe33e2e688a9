//go:build linux || darwin

package system

import (
	"path/filepath"
	"strings"
)

const etcLocaltime = "/etc/localtime"

// platformZoneName derives the zone name from the /etc/localtime
// symlink, which distributions point into the zoneinfo directory, e.g.
// /usr/share/zoneinfo/Europe/Berlin.
func platformZoneName() (string, bool) {
	target, err := filepath.EvalSymlinks(etcLocaltime)
	if err != nil {
		return "", false
	}
	_, name, found := strings.Cut(target, "/zoneinfo/")
	if !found || name == "" {
		return "", false
	}
	return name, true
}
