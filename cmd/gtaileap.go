package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/karasz/gtleap/leapsec"
)

// printTable writes the effective leap second table, marking the events
// learned from the leap second source with '*'.
func printTable(out io.Writer, conv *leapsec.Converter) {
	supp := conv.Supplement()
	for _, e := range conv.Effective() {
		mark := " "
		if e.At >= leapsec.ExpiresUTC {
			mark = "*"
		}
		_, _ = fmt.Fprintf(out, "%s %s %11d %11d %+4d\n",
			mark, time.Unix(e.At, 0).UTC().Format(time.DateOnly), e.At, e.TAI(), e.Offset)
	}
	_, _ = fmt.Fprintf(out, "compiled table expires %s\n",
		time.Unix(leapsec.ExpiresUTC, 0).UTC().Format(time.RFC3339))
	_, _ = fmt.Fprintf(out, "%d leap seconds from the system after expiration\n", len(supp))
}

func gtaileap(args []string, out io.Writer, conv func(*options) *leapsec.Converter) int {
	var opts options
	fs := flag.NewFlagSet("gtaileap", flag.ContinueOnError)
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		_, _ = fmt.Fprintln(out, err)
		return 111
	}
	if fs.NArg() != 0 {
		_, _ = fmt.Fprintln(out, "gtaileap takes no arguments")
		return 111
	}

	printTable(out, conv(&opts))
	return 0
}

// GTAILeapRun prints the leap second table in effect.
func GTAILeapRun(args []string) int {
	return gtaileap(args, os.Stdout, (*options).converter)
}
