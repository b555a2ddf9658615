package leapsec

import (
	"encoding/binary"
	"time"
)

const (
	// registryRecordSize is the size of one LeapSecondInformation record:
	// year, month, day, hour, negative and a reserved field, all uint16.
	registryRecordSize = 12
	// The registry started tracking leap seconds in June 2018, when the
	// difference between TAI and UTC was 37 seconds.
	registrySeed = 37
)

// ParseRegistryRecords decodes the LeapSeconds registry value. A value whose
// length is zero or not a multiple of the record size yields false. Invalid
// records are skipped and only events at or after ExpiresUTC are returned.
func ParseRegistryRecords(buf []byte) (Table, bool) {
	if len(buf) == 0 || len(buf)%registryRecordSize != 0 {
		return nil, false
	}

	var table Table
	diff := int64(registrySeed)
	for off := 0; off < len(buf); off += registryRecordSize {
		rec := buf[off : off+registryRecordSize]
		year := int(binary.LittleEndian.Uint16(rec[0:]))
		month := int(binary.LittleEndian.Uint16(rec[2:]))
		day := int(binary.LittleEndian.Uint16(rec[4:]))
		hour := int(binary.LittleEndian.Uint16(rec[6:]))
		negative := binary.LittleEndian.Uint16(rec[8:]) != 0

		if month < 1 || month > 12 {
			continue
		}
		at, ok := civil(year, time.Month(month), day, hour, 59, 59)
		if !ok {
			continue
		}
		at++
		if negative {
			diff--
		} else {
			diff++
		}
		if at >= ExpiresUTC {
			table = append(table, Event{At: at, Offset: diff})
		}
	}
	return table, true
}
