package leapsec

import (
	"testing"
	"time"
)

func TestStaticTableIsValid(t *testing.T) {
	tbl := Static()
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Static().Validate() = %v", err)
	}
	if len(tbl) != 27 {
		t.Errorf("len(Static()) = %d, want 27", len(tbl))
	}
	for i, e := range tbl {
		if want := int64(FirstOffset + 1 + i); e.Offset != want {
			t.Errorf("Static()[%d].Offset = %d, want %d", i, e.Offset, want)
		}
		d := time.Unix(e.At, 0).UTC()
		if d.Day() != 1 || d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
			t.Errorf("Static()[%d] = %v, not at midnight on the first of a month", i, d)
		}
	}
	last, _ := tbl.Last()
	if ExpiresTAI != ExpiresUTC+last.Offset {
		t.Errorf("ExpiresTAI = %d, want %d", ExpiresTAI, ExpiresUTC+last.Offset)
	}
	if got := time.Unix(ExpiresUTC, 0).UTC(); !got.Equal(time.Date(2023, time.June, 28, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ExpiresUTC = %v, want 2023-06-28", got)
	}
}

func TestStaticReturnsCopy(t *testing.T) {
	tbl := Static()
	tbl[0].Offset = 99
	if static[0].Offset != 11 {
		t.Errorf("modifying Static() changed the compiled table")
	}
}

func TestTableOffsetUTC(t *testing.T) {
	tbl := Table{{100, 11}, {200, 12}, {300, 13}}
	tests := []struct {
		sec    int64
		want   int64
		wantOK bool
	}{
		{-1000, 0, false},
		{99, 0, false},
		{100, 11, true},
		{199, 11, true},
		{200, 12, true},
		{300, 13, true},
		{1 << 40, 13, true},
	}
	for _, tt := range tests {
		got, ok := tbl.OffsetUTC(tt.sec)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("OffsetUTC(%d) = (%d, %v), want (%d, %v)", tt.sec, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTableOffsetTAI(t *testing.T) {
	tbl := Table{{100, 11}, {200, 12}}
	tests := []struct {
		sec    int64
		want   int64
		wantOK bool
	}{
		{110, 0, false},
		{111, 11, true},
		{211, 11, true},
		{212, 12, true},
	}
	for _, tt := range tests {
		got, ok := tbl.OffsetTAI(tt.sec)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("OffsetTAI(%d) = (%d, %v), want (%d, %v)", tt.sec, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTableSince(t *testing.T) {
	tbl := Table{{100, 11}, {200, 12}, {300, 13}}
	tests := []struct {
		sec  int64
		want int
	}{
		{0, 3},
		{100, 3},
		{101, 2},
		{300, 1},
		{301, 0},
	}
	for _, tt := range tests {
		if got := tbl.Since(tt.sec); len(got) != tt.want {
			t.Errorf("Since(%d) = %v, want %d events", tt.sec, got, tt.want)
		}
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		tbl     Table
		wantErr bool
	}{
		{"empty", nil, false},
		{"single", Table{{100, 11}}, false},
		{"ordered", Table{{100, 11}, {200, 12}}, false},
		{"negative leap second", Table{{100, 11}, {200, 10}}, false},
		{"duplicate instant", Table{{100, 11}, {100, 12}}, true},
		{"unordered", Table{{200, 11}, {100, 12}}, true},
		{"overlap in TAI", Table{{100, 20}, {101, 10}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.tbl.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func BenchmarkTableOffsetUTC(b *testing.B) {
	for i := 0; i < b.N; i++ {
		static.OffsetUTC(int64(i))
	}
}
