//go:build unix

package leapsec

// DefaultSource returns the tz database leap second file.
func DefaultSource() Source {
	return FileSource{Path: DefaultLeapFile, Format: FormatTZ}
}
