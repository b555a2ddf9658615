package leapsec

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultLeapFile is the tz database leap second file on unix systems.
const DefaultLeapFile = "/usr/share/zoneinfo/leapseconds"

// Format selects the syntax of a leap second file.
type Format int

const (
	// FormatTZ is the tz database "leapseconds" syntax:
	//   Leap	2016	Dec	31	23:59:60	+	S
	FormatTZ Format = iota
	// FormatNTPList is the IERS/NTP "leap-seconds.list" syntax:
	//   3692217600	37	# 1 Jan 2017
	FormatNTPList
)

func (f Format) String() string {
	switch f {
	case FormatTZ:
		return "tz"
	case FormatNTPList:
		return "leap-seconds.list"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// FileSource reads leap seconds from a file maintained by the operating
// system.
type FileSource struct {
	Path   string
	Format Format
}

// LeapSeconds reads and parses the file. An unreadable file yields false.
func (s FileSource) LeapSeconds() (Table, bool) {
	path := s.Path
	if path == "" {
		path = DefaultLeapFile
	}
	f, err := os.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("leap second file unavailable")
		return nil, false
	}
	defer func() { _ = f.Close() }()

	if s.Format == FormatNTPList {
		return ParseLeapSecondsList(f), true
	}
	return ParseLeapFile(f), true
}

var months = make(map[string]time.Month, 12)

func init() {
	for m := time.January; m <= time.December; m++ {
		months[m.String()[:3]] = m
	}
}

// ParseLeapFile parses the tz "leapseconds" syntax. Malformed lines are
// skipped. The running offset starts at FirstOffset and only events at or
// after ExpiresUTC are returned.
func ParseLeapFile(r io.Reader) Table {
	var (
		table     Table
		diff      int64 = FirstOffset
		conflicts int
	)
	eachLine(r, func(line string) {
		at, delta, ok := parseLeapLine(line)
		if !ok {
			return
		}
		diff += delta
		if at < ExpiresUTC {
			if !historyAgrees(at, diff) {
				conflicts++
			}
			return
		}
		table = append(table, Event{At: at, Offset: diff})
	})
	warnHistory("tz", conflicts)
	return table
}

// parseLeapLine decodes one "Leap YEAR MON DAY HH:MM:SS CORR [R|S]" line.
func parseLeapLine(line string) (at int64, delta int64, ok bool) {
	f := strings.Fields(line)
	if len(f) < 6 || f[0] != "Leap" {
		return 0, 0, false
	}
	year, err := strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, false
	}
	month, found := months[f[2]]
	if !found {
		return 0, 0, false
	}
	day, err := strconv.Atoi(f[3])
	if err != nil {
		return 0, 0, false
	}
	hms := strings.Split(f[4], ":")
	if len(hms) != 3 {
		return 0, 0, false
	}
	var clock [3]int
	for i, v := range hms {
		if clock[i], err = strconv.Atoi(v); err != nil {
			return 0, 0, false
		}
	}
	// 23:59:60 is written for the inserted second itself.
	if clock[2] > 59 {
		clock[2] = 59
	}
	at, ok = civil(year, month, day, clock[0], clock[1], clock[2])
	if !ok {
		return 0, 0, false
	}

	switch f[5] {
	case "+":
		return at + 1, 1, true
	case "-":
		return at, -1, true
	default:
		return 0, 0, false
	}
}

// ParseLeapSecondsList parses the NTP "leap-seconds.list" syntax, where each
// line carries the NTP timestamp of an event and the offset from then on.
// Comment lines start with '#'. Only events at or after ExpiresUTC are
// returned.
func ParseLeapSecondsList(r io.Reader) Table {
	var (
		table     Table
		conflicts int
	)
	eachLine(r, func(line string) {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return
		}
		ntp, err := strconv.ParseInt(f[0], 10, 64)
		if err != nil {
			return
		}
		offset, err := strconv.ParseInt(f[1], 10, 64)
		if err != nil {
			return
		}
		at := ntp - NTPEpochOffset
		if at < ExpiresUTC {
			if !historyAgrees(at, offset) {
				conflicts++
			}
			return
		}
		table = append(table, Event{At: at, Offset: offset})
	})
	warnHistory("leap-seconds.list", conflicts)
	return table
}

// eachLine calls fn for every line of r, whatever its length. A final line
// without a newline is still delivered. A read error ends the walk.
func eachLine(r io.Reader, fn func(line string)) {
	in := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			lineno++
			fn(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Debug().Err(err).Int("line", lineno).Msg("leap second file truncated")
			return
		}
	}
}
