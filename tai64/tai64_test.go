package tai64

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/karasz/gtleap/leapsec"
	"github.com/karasz/gtleap/tai"
)

var compiled = leapsec.NewConverter(leapsec.Unavailable{})

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		utc  time.Time
		want string
	}{
		{"unix epoch", time.Unix(0, 0), "@400000000000000A00000000"},
		{"2018", time.Date(2018, time.February, 14, 19, 31, 10, 0, time.UTC), "@400000005A848EA300000000"},
		{"nanoseconds", time.Date(2018, time.February, 14, 19, 31, 10, 999999999, time.UTC), "@400000005A848EA33B9AC9FF"},
		{"before 1970", time.Unix(-11, 0), "@3FFFFFFFFFFFFFFF00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tai.FromTimeOn(compiled, tt.utc))
			if got != tt.want {
				t.Errorf("Format(%v) = %s, want %s", tt.utc, got, tt.want)
			}
		})
	}
}

func TestFormatTAI(t *testing.T) {
	i := tai.Unix(0x5A848EA3, 5)
	if got, want := FormatTAI(i), "@400000005A848EA3"; got != want {
		t.Errorf("FormatTAI() = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		label   string
		want    tai.Instant
		wantErr bool
	}{
		{"@400000005A848EA33B9AC9FF", tai.Unix(0x5A848EA3, 999999999), false},
		{"@400000005a848ea300000001", tai.Unix(0x5A848EA3, 1), false},
		{"@400000005A848EA3", tai.Unix(0x5A848EA3, 0), false},
		{"@3FFFFFFFFFFFFFFF", tai.Unix(-1, 0), false},
		{"@400000005A848EA3FFFFFFFF", tai.Instant{}, true},
		{"", tai.Instant{}, true},
		{"@", tai.Instant{}, true},
		{"@452452", tai.Instant{}, true},
		{"#400000005A848EA3", tai.Instant{}, true},
		{"@40000000gsdf fgs", tai.Instant{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := Parse(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrLabel) {
				t.Errorf("Parse(%q) error = %v, want ErrLabel", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestPackUnpack(t *testing.T) {
	for _, i := range []tai.Instant{
		tai.Unix(0, 0),
		tai.Unix(1483228837, 123456789),
		tai.Unix(-1000, 5),
	} {
		buf := Pack(i)
		if len(buf) != TAINLength {
			t.Fatalf("len(Pack(%v)) = %d, want %d", i, len(buf), TAINLength)
		}
		got, err := Unpack(buf)
		if err != nil || got != i {
			t.Errorf("Unpack(Pack(%v)) = (%v, %v)", i, got, err)
		}
		got, err = Unpack(buf[:TAILength])
		if err != nil || got != tai.Unix(i.Seconds(), 0) {
			t.Errorf("Unpack(Pack(%v)[:8]) = (%v, %v)", i, got, err)
		}
	}
	if _, err := Unpack([]byte{1, 2, 3}); !errors.Is(err, ErrLabel) {
		t.Errorf("Unpack(3 bytes) error = %v, want ErrLabel", err)
	}
	want := []byte{0x40, 0, 0, 0, 0, 0, 0, 0x0a, 0, 0, 0, 0}
	if got := Pack(tai.FromTimeOn(compiled, time.Unix(0, 0))); !bytes.Equal(got, want) {
		t.Errorf("Pack(unix epoch) = %x, want %x", got, want)
	}
}

func BenchmarkFormat(b *testing.B) {
	i := tai.Unix(1483228837, 123456789)
	for n := 0; n < b.N; n++ {
		Format(i)
	}
}
