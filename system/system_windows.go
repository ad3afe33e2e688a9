//go:build windows

package system

import (
	"golang.org/x/sys/windows/registry"

	wintz "github.com/mhartig/tzresolve/tzdb/windows"
)

const tzInfoKey = `SYSTEM\CurrentControlSet\Control\TimeZoneInformation`

// platformZoneName reads the Windows timezone key name from the
// registry and translates it to an IANA identifier.
func platformZoneName() (string, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, tzInfoKey, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	keyName, _, err := k.GetStringValue("TimeZoneKeyName")
	if err != nil {
		return "", false
	}
	return wintz.Lookup(keyName)
}
