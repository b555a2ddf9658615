package leapsec

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Source supplies leap seconds announced after the compiled table was built.
// LeapSeconds reports false when the source has nothing to offer; callers
// treat that exactly like an empty table.
type Source interface {
	LeapSeconds() (Table, bool)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (Table, bool)

// LeapSeconds calls f.
func (f SourceFunc) LeapSeconds() (Table, bool) {
	return f()
}

// Unavailable is the Source of platforms without a leap second database.
type Unavailable struct{}

// LeapSeconds always reports false.
func (Unavailable) LeapSeconds() (Table, bool) {
	return nil, false
}

// civil returns the Unix time of a UTC calendar moment, rejecting
// out-of-range fields instead of normalising them the way time.Date does.
func civil(year int, month time.Month, day, hour, minute, second int) (int64, bool) {
	t := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return 0, false
	}
	return t.Unix(), true
}

// historyAgrees reports whether a live source's view of the offset at the
// UTC second at matches the compiled table.
func historyAgrees(at, offset int64) bool {
	want, ok := static.OffsetUTC(at)
	if !ok {
		want = FirstOffset
	}
	return want == offset
}

func warnHistory(source string, conflicts int) {
	if conflicts == 0 {
		return
	}
	log.Warn().
		Str("source", source).
		Int("conflicts", conflicts).
		Msg("leap second history disagrees with the compiled table, keeping the source offsets")
}
