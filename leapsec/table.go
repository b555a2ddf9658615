// Package leapsec resolves the UTC to TAI offset for any instant.
//
// A compiled table covers every leap second announced up to ExpiresUTC.
// Instants past that point consult a Source (the tz leapseconds file on
// unix, the registry on windows) exactly once per Converter.
package leapsec

import (
	"fmt"
	"sort"
)

// FirstOffset is the TAI-UTC difference applied to every instant before the
// first tabulated leap second. 1972-01-01 is the start of the UTC/TAI
// distinction, so earlier instants get the same 10 seconds to keep them out
// of durations.
const FirstOffset = 10

// NTPEpochOffset is the number of seconds between 1900-01-01 (the epoch of
// leap-seconds.list) and the Unix epoch.
const NTPEpochOffset = 25567 * 24 * 60 * 60

// ExpiresUTC is the expiration of the compiled table, 2023-06-28T00:00:00Z,
// in Unix seconds.
const ExpiresUTC int64 = 3896899200 - NTPEpochOffset

// ExpiresTAI is ExpiresUTC expressed in TAI seconds.
const ExpiresTAI = ExpiresUTC + 37

// Event is one change of the TAI-UTC offset. At is the first UTC second
// (Unix time) the new Offset applies to.
type Event struct {
	At     int64
	Offset int64
}

// TAI returns the event instant expressed in TAI seconds.
func (e Event) TAI() int64 {
	return e.At + e.Offset
}

func (e Event) String() string {
	return fmt.Sprintf("%d%+d", e.At, e.Offset)
}

// Table is a list of events ordered by instant.
type Table []Event

// https://www.ietf.org/timezones/data/leap-seconds.list
var static = Table{
	{78796800, 11},   // 1 Jul 1972
	{94694400, 12},   // 1 Jan 1973
	{126230400, 13},  // 1 Jan 1974
	{157766400, 14},  // 1 Jan 1975
	{189302400, 15},  // 1 Jan 1976
	{220924800, 16},  // 1 Jan 1977
	{252460800, 17},  // 1 Jan 1978
	{283996800, 18},  // 1 Jan 1979
	{315532800, 19},  // 1 Jan 1980
	{362793600, 20},  // 1 Jul 1981
	{394329600, 21},  // 1 Jul 1982
	{425865600, 22},  // 1 Jul 1983
	{489024000, 23},  // 1 Jul 1985
	{567993600, 24},  // 1 Jan 1988
	{631152000, 25},  // 1 Jan 1990
	{662688000, 26},  // 1 Jan 1991
	{709948800, 27},  // 1 Jul 1992
	{741484800, 28},  // 1 Jul 1993
	{773020800, 29},  // 1 Jul 1994
	{820454400, 30},  // 1 Jan 1996
	{867715200, 31},  // 1 Jul 1997
	{915148800, 32},  // 1 Jan 1999
	{1136073600, 33}, // 1 Jan 2006
	{1230768000, 34}, // 1 Jan 2009
	{1341100800, 35}, // 1 Jul 2012
	{1435708800, 36}, // 1 Jul 2015
	{1483228800, 37}, // 1 Jan 2017
}

// Static returns a copy of the compiled table.
func Static() Table {
	return static.clone()
}

func (t Table) clone() Table {
	if len(t) == 0 {
		return nil
	}
	c := make(Table, len(t))
	copy(c, t)
	return c
}

// Last returns the most recent event of the table.
func (t Table) Last() (Event, bool) {
	if len(t) == 0 {
		return Event{}, false
	}
	return t[len(t)-1], true
}

// OffsetUTC returns the offset of the most recent event at or before the UTC
// second sec.
func (t Table) OffsetUTC(sec int64) (int64, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].At > sec })
	if i == 0 {
		return 0, false
	}
	return t[i-1].Offset, true
}

// OffsetTAI is OffsetUTC keyed on the TAI instant of each event.
func (t Table) OffsetTAI(sec int64) (int64, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].TAI() > sec })
	if i == 0 {
		return 0, false
	}
	return t[i-1].Offset, true
}

// Since returns the events at or after the UTC second sec.
func (t Table) Since(sec int64) Table {
	i := sort.Search(len(t), func(i int) bool { return t[i].At >= sec })
	return t[i:].clone()
}

// Validate checks that both the UTC and the TAI keys are strictly
// increasing.
func (t Table) Validate() error {
	for i := 1; i < len(t); i++ {
		if t[i].At <= t[i-1].At {
			return fmt.Errorf("event %d (%v) does not follow %v", i, t[i], t[i-1])
		}
		if t[i].TAI() <= t[i-1].TAI() {
			return fmt.Errorf("event %d (%v) overlaps %v in TAI", i, t[i], t[i-1])
		}
	}
	return nil
}
