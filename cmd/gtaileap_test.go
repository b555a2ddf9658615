package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/karasz/gtleap/leapsec"
)

func TestGTAILeap(t *testing.T) {
	jan2027 := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	conv := func(*options) *leapsec.Converter {
		return leapsec.NewConverter(leapsec.SourceFunc(func() (leapsec.Table, bool) {
			return leapsec.Table{{At: jan2027, Offset: 38}}, true
		}))
	}

	var out bytes.Buffer
	if code := gtaileap(nil, &out, conv); code != 0 {
		t.Fatalf("gtaileap() = %d, output %q", code, out.String())
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != len(leapsec.Static())+3 {
		t.Fatalf("gtaileap() printed %d lines, want %d:\n%s", len(lines), len(leapsec.Static())+3, out.String())
	}
	tests := []struct {
		line int
		want string
	}{
		{0, "  1972-07-01    78796800    78796811  +11"},
		{len(lines) - 3, "* 2027-01-01  1798761600  1798761638  +38"},
		{len(lines) - 2, "compiled table expires 2023-06-28T00:00:00Z"},
		{len(lines) - 1, "1 leap seconds from the system after expiration"},
	}
	for _, tt := range tests {
		if lines[tt.line] != tt.want {
			t.Errorf("line %d = %q, want %q", tt.line, lines[tt.line], tt.want)
		}
	}
}

func TestGTAILeapArgs(t *testing.T) {
	var out bytes.Buffer
	if code := gtaileap([]string{"extra"}, &out, compiledConverter); code != 111 {
		t.Errorf("gtaileap(extra) = %d, want 111", code)
	}
	if code := gtaileap([]string{"-x"}, &out, compiledConverter); code != 111 {
		t.Errorf("gtaileap(-x) = %d, want 111", code)
	}
}

func TestMainDispatcher(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no applet", nil, 1},
		{"unknown applet", []string{"gtclockd"}, 1},
		{"gtaiconv without times", []string{"gtaiconv"}, 111},
		{"gtaileap with arguments", []string{"gtaileap", "extra"}, 111},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MainDispatcher(tt.args); got != tt.want {
				t.Errorf("MainDispatcher(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
