package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/karasz/gtleap/tai"
	"github.com/karasz/gtleap/tai64"
)

const (
	tainLabelLength = 1 + 2*tai64.TAINLength
	taiLabelLength  = 1 + 2*tai64.TAILength
)

// tryParseTimestamp attempts to parse and replace a label at the given position.
func tryParseTimestamp(working string, atpos int, length int, scale tai.Scale) (string, bool) {
	if len(working) < atpos+length {
		return working, false
	}

	lbl := working[atpos : atpos+length]
	i, err := tai64.Parse(lbl)
	if err != nil {
		return working, false
	}
	return strings.Replace(working, lbl, fmt.Sprint(i.TimeOn(scale)), 1), true
}

func processline(s string, scale tai.Scale) string {
	working := s
	atpos := strings.Index(working, "@")
	if atpos == -1 {
		return working
	}

	// Try TAIN format (25 chars) first
	if result, ok := tryParseTimestamp(working, atpos, tainLabelLength, scale); ok {
		return result
	}

	// Try TAI format (17 chars)
	if result, ok := tryParseTimestamp(working, atpos, taiLabelLength, scale); ok {
		return result
	}

	return working
}

// validateInputFile checks if the input file is suitable for processing.
func validateInputFile(file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return err
	}

	if info.Mode()&os.ModeNamedPipe == 0 {
		return errors.New("the command is intended to work with pipes.\nUsage: cat logfile | gtailocal")
	}

	return nil
}

// processInputStream reads from input and writes processed lines to output.
func processInputStream(in *bufio.Reader, output *bufio.Writer, scale tai.Scale) error {
	for {
		input, err := in.ReadString('\n')
		if input != "" {
			if _, werr := output.WriteString(processline(input, scale)); werr != nil {
				return werr
			}
			if werr := output.Flush(); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// GTAILocalRun converts TAI64 and TAI64N labels read from standard input to
// UTC times.
func GTAILocalRun(args []string) int {
	var opts options
	fs := flag.NewFlagSet("gtailocal", flag.ContinueOnError)
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		_, _ = fmt.Println(err)
		return 111
	}

	file := os.Stdin
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		// In future, could support file input here, but for now we bail out
		_, _ = fmt.Println("we do not support calling filenames yet")
		return 111
	}

	if err := validateInputFile(file); err != nil {
		_, _ = fmt.Println(err)
		return 111
	}

	conv := opts.converter()
	in := bufio.NewReader(file)
	output := bufio.NewWriter(os.Stdout)

	if err := processInputStream(in, output, conv); err != nil {
		_, _ = fmt.Println(err)
		_ = output.Flush()
		return 111
	}

	return 0
}
