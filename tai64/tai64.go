// Package tai64 encodes TAI instants as TAI64 and TAI64N labels, the
// external formats of libtai and daemontools' tai64n.
//
// The label of an instant is 2^62 plus its seconds since
// 1970-01-01T00:00:00 TAI, so 1970-01-01T00:00:00Z (TAI 00:00:10) is
// @400000000000000a.
package tai64

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/karasz/glibtai"
	"github.com/karasz/gtleap/tai"
)

// LabelBase is the label of 1970-01-01T00:00:00 TAI.
const LabelBase = uint64(1) << 62

// TAILength is the length of a packed TAI64 label.
const TAILength = glibtai.TAILength

// TAINLength is the length of a packed TAI64N label.
const TAINLength = glibtai.TAINLength

// ErrLabel is returned for strings that are not TAI64 or TAI64N labels.
var ErrLabel = errors.New("not a TAI64 label")

// Pack packs i as a TAI64N label.
func Pack(i tai.Instant) []byte {
	buf := make([]byte, TAINLength)
	binary.BigEndian.PutUint64(buf, LabelBase+uint64(i.Seconds()))
	binary.BigEndian.PutUint32(buf[TAILength:], uint32(i.Nanoseconds()))
	return buf
}

// Unpack decodes a packed TAI64 or TAI64N label.
func Unpack(buf []byte) (tai.Instant, error) {
	switch len(buf) {
	case TAILength:
		return tai.Unix(int64(binary.BigEndian.Uint64(buf)-LabelBase), 0), nil
	case TAINLength:
		nano := binary.BigEndian.Uint32(buf[TAILength:])
		if nano > 999999999 {
			return tai.Instant{}, fmt.Errorf("%w: nanoseconds %d out of range", ErrLabel, nano)
		}
		sec := int64(binary.BigEndian.Uint64(buf) - LabelBase)
		return tai.Unix(sec, int64(nano)), nil
	default:
		return tai.Instant{}, fmt.Errorf("%w: %d bytes", ErrLabel, len(buf))
	}
}

// Format returns the "@" prefixed hexadecimal TAI64N label of i.
func Format(i tai.Instant) string {
	return glibtai.TAINUnpack(Pack(i)).String()
}

// FormatTAI returns the TAI64 label of i, dropping the fraction.
func FormatTAI(i tai.Instant) string {
	return glibtai.TAIUnpack(Pack(i)[:TAILength]).String()
}

// Parse decodes a TAI64 (17 characters) or TAI64N (25 characters) label.
func Parse(s string) (tai.Instant, error) {
	switch len(s) {
	case 1 + 2*TAINLength:
		tn, err := glibtai.TAINfromString(s)
		if err != nil {
			return tai.Instant{}, fmt.Errorf("%w: %v", ErrLabel, err)
		}
		return Unpack(glibtai.TAINPack(tn))
	case 1 + 2*TAILength:
		t, err := glibtai.TAIfromString(s)
		if err != nil {
			return tai.Instant{}, fmt.Errorf("%w: %v", ErrLabel, err)
		}
		return Unpack(glibtai.TAIPack(t))
	default:
		return tai.Instant{}, fmt.Errorf("%w: %q", ErrLabel, s)
	}
}
