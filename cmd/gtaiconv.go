package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/karasz/gtleap/leapsec"
	"github.com/karasz/gtleap/tai"
	"github.com/karasz/gtleap/tai64"
)

var errNoTimes = errors.New("no times given. Usage: gtaiconv [-r] [-s] [-d dir] [-f leapfile] TIME...")

// taiNow reads the current TAI time, converting the UTC clock with the given
// table when there is no kernel TAI clock.
var taiNow = tai.NowOn

// toTAILine converts one RFC3339 UTC time, or "now", and formats the result
// with label.
func toTAILine(arg string, conv *leapsec.Converter, label func(tai.Instant) string) (string, error) {
	var i tai.Instant
	if arg == "now" {
		i = taiNow(conv)
	} else {
		t, err := time.Parse(time.RFC3339Nano, arg)
		if err != nil {
			return "", fmt.Errorf("invalid UTC time %q: %w", arg, err)
		}
		i = tai.FromTimeOn(conv, t)
	}
	offset := conv.OffsetAtTAI(i.Seconds())
	return fmt.Sprintf("%s %s %s +%ds", arg, label(i), i, offset), nil
}

// toUTCLine converts one TAI64 or TAI64N label and formats the result.
func toUTCLine(arg string, conv *leapsec.Converter) (string, error) {
	i, err := tai64.Parse(arg)
	if err != nil {
		return "", err
	}
	utc := i.TimeOn(conv)
	line := fmt.Sprintf("%s %s -%ds", arg, utc.Format(time.RFC3339Nano), conv.OffsetAtTAI(i.Seconds()))
	if conv.IsLeapSecond(i.Seconds()) {
		line += " leap second"
	}
	return line, nil
}

func gtaiconv(args []string, out io.Writer, conv func(*options) *leapsec.Converter) int {
	var (
		opts    options
		reverse bool
		short   bool
	)
	fs := flag.NewFlagSet("gtaiconv", flag.ContinueOnError)
	opts.register(fs)
	fs.BoolVar(&reverse, "r", false, "convert TAI64 labels to UTC")
	fs.BoolVar(&short, "s", false, "print TAI64 labels without nanoseconds")
	if err := fs.Parse(args); err != nil {
		_, _ = fmt.Fprintln(out, err)
		return 111
	}
	if fs.NArg() == 0 {
		_, _ = fmt.Fprintln(out, errNoTimes)
		return 111
	}

	c := conv(&opts)
	label := tai64.Format
	if short {
		label = tai64.FormatTAI
	}
	convert := func(arg string) (string, error) {
		return toTAILine(arg, c, label)
	}
	if reverse {
		convert = func(arg string) (string, error) {
			return toUTCLine(arg, c)
		}
	}

	ret := 0
	for _, arg := range fs.Args() {
		line, err := convert(arg)
		if err != nil {
			_, _ = fmt.Fprintln(out, err)
			ret = 111
			continue
		}
		_, _ = fmt.Fprintln(out, line)
	}
	return ret
}

// GTAIConvRun converts UTC times given as arguments to TAI, or TAI64 labels
// back to UTC with -r.
func GTAIConvRun(args []string) int {
	return gtaiconv(args, os.Stdout, (*options).converter)
}
