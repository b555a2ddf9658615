//go:build linux

package tai

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// clockNow reads CLOCK_TAI. The kernel only knows the TAI offset when a time
// daemon has set it, before that CLOCK_TAI equals CLOCK_REALTIME and is
// ignored.
func clockNow() (Instant, bool) {
	var tx unix.Timex
	if _, err := unix.Adjtimex(&tx); err != nil {
		log.Debug().Err(err).Msg("adjtimex failed")
		return Instant{}, false
	}
	if tx.Tai == 0 {
		return Instant{}, false
	}

	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_TAI, &ts); err != nil {
		log.Debug().Err(err).Msg("CLOCK_TAI unavailable")
		return Instant{}, false
	}
	return Instant{sec: int64(ts.Sec), nsec: int32(ts.Nsec)}, true
}
