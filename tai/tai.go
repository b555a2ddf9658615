// Package tai provides an instant on the International Atomic Time scale.
//
// Subtracting two Instants gives the physical time elapsed between them,
// leap seconds included, which subtracting the UTC times does not.
package tai

import (
	"fmt"
	"time"

	"github.com/karasz/gtleap/leapsec"
)

const nanoPerSec = 1e9

// Scale converts whole seconds between UTC (Unix time) and TAI (seconds
// since 1970-01-01T00:00:00 TAI).
type Scale interface {
	ToTAI(utc int64) int64
	ToUTC(tai int64) int64
}

// Instant is a TAI instant with nanosecond precision. The zero value is
// 1970-01-01T00:00:00 TAI.
type Instant struct {
	sec  int64
	nsec int32
}

// Unix returns the Instant sec seconds and nsec nanoseconds after
// 1970-01-01T00:00:00 TAI. nsec may be outside [0, 999999999].
func Unix(sec, nsec int64) Instant {
	if nsec < 0 || nsec >= nanoPerSec {
		sec += nsec / nanoPerSec
		nsec %= nanoPerSec
		if nsec < 0 {
			nsec += nanoPerSec
			sec--
		}
	}
	return Instant{sec: sec, nsec: int32(nsec)}
}

// FromTime converts a UTC time with the default leap second table.
func FromTime(t time.Time) Instant {
	return FromTimeOn(leapsec.Default(), t)
}

// FromTimeOn converts a UTC time using s. The fraction of the second is
// kept as is.
func FromTimeOn(s Scale, t time.Time) Instant {
	return Instant{sec: s.ToTAI(t.Unix()), nsec: int32(t.Nanosecond())}
}

// Time converts i to UTC with the default leap second table.
func (i Instant) Time() time.Time {
	return i.TimeOn(leapsec.Default())
}

// TimeOn converts i to UTC using s.
func (i Instant) TimeOn(s Scale) time.Time {
	return time.Unix(s.ToUTC(i.sec), int64(i.nsec)).UTC()
}

// Seconds returns the whole seconds since 1970-01-01T00:00:00 TAI.
func (i Instant) Seconds() int64 {
	return i.sec
}

// Nanoseconds returns the fraction of the second, in [0, 999999999].
func (i Instant) Nanoseconds() int32 {
	return i.nsec
}

// Sub returns the duration i-u. The result saturates at the limits of
// time.Duration, about 292 years.
func (i Instant) Sub(u Instant) time.Duration {
	const maxSec = int64(1<<63-1) / nanoPerSec
	ds := i.sec - u.sec
	dn := int64(i.nsec) - int64(u.nsec)
	// ds has wrapped when its sign disagrees with the order of the operands.
	switch {
	case i.sec >= u.sec && (ds < 0 || ds >= maxSec):
		return time.Duration(1<<63 - 1)
	case i.sec < u.sec && (ds >= 0 || ds <= -maxSec):
		return time.Duration(-1 << 63)
	}
	return time.Duration(ds*nanoPerSec + dn)
}

// Add returns i+d.
func (i Instant) Add(d time.Duration) Instant {
	return Unix(i.sec+int64(d/nanoPerSec), int64(i.nsec)+int64(d%nanoPerSec))
}

// Compare returns -1, 0 or +1 when i is before, equal to or after u.
func (i Instant) Compare(u Instant) int {
	switch {
	case i.sec < u.sec, i.sec == u.sec && i.nsec < u.nsec:
		return -1
	case i.sec > u.sec, i.nsec > u.nsec:
		return 1
	}
	return 0
}

// Before reports whether i is before u.
func (i Instant) Before(u Instant) bool {
	return i.Compare(u) < 0
}

// After reports whether i is after u.
func (i Instant) After(u Instant) bool {
	return i.Compare(u) > 0
}

// Equal reports whether i and u are the same instant.
func (i Instant) Equal(u Instant) bool {
	return i == u
}

// String formats i like time.Time with a TAI zone. The calendar fields are
// the TAI ones, not the UTC ones.
func (i Instant) String() string {
	t := time.Unix(i.sec, int64(i.nsec)).UTC()
	return fmt.Sprintf("%s TAI", t.Format("2006-01-02 15:04:05.999999999"))
}

// readClock is replaced in tests.
var readClock = clockNow

// Now returns the current TAI time. The kernel TAI clock is used when the
// platform has one and it is set, otherwise the UTC clock is converted with
// the default leap second table.
func Now() Instant {
	return NowOn(leapsec.Default())
}

// NowOn is like Now but converts the UTC clock using s when the kernel TAI
// clock cannot be read.
func NowOn(s Scale) Instant {
	if i, ok := readClock(); ok {
		return i
	}
	return FromTimeOn(s, time.Now())
}
