//go:build windows

package leapsec

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

const (
	leapSecondKey   = `SYSTEM\CurrentControlSet\Control\LeapSecondInformation`
	leapSecondValue = "LeapSeconds"
)

// RegistrySource reads the leap seconds Windows keeps in the registry.
type RegistrySource struct{}

// LeapSeconds reads and decodes the LeapSeconds value. A missing key or
// value yields false.
func (RegistrySource) LeapSeconds() (Table, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, leapSecondKey, registry.READ)
	if err != nil {
		log.Debug().Err(err).Str("key", leapSecondKey).Msg("leap second registry key unavailable")
		return nil, false
	}
	defer func() { _ = k.Close() }()

	buf, _, err := k.GetBinaryValue(leapSecondValue)
	if err != nil {
		log.Debug().Err(err).Str("value", leapSecondValue).Msg("leap second registry value unavailable")
		return nil, false
	}
	return ParseRegistryRecords(buf)
}

// DefaultSource returns the registry source.
func DefaultSource() Source {
	return RegistrySource{}
}
