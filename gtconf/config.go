// Package gtconf reads gtleap settings from a configuration directory, one
// setting per file in the style of DJB's daemontools:
//
//	leapfile   first line is the absolute path of a leap second file
//	debug      if present, debug logging is enabled
//
// Missing or invalid files fall back to the defaults.
package gtconf

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/karasz/gtleap/leapsec"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration directory and the values used when it does
// not override them.
type Config struct {
	ConfigDir       string
	DefaultLeapFile string
}

// insideDir checks that name resolves to a path inside dir.
func insideDir(name string, dir string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absName, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return strings.HasPrefix(absName, absDir+string(filepath.Separator))
}

// isValidSettingName accepts lower case names without path separators.
func isValidSettingName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return true
}

// settingFile returns the path of a setting, or "" if it cannot be used.
func (config *Config) settingFile(name string) string {
	if config.ConfigDir == "" || !isValidSettingName(name) {
		return ""
	}
	path := filepath.Join(config.ConfigDir, name)
	if !insideDir(path, config.ConfigDir) {
		return ""
	}
	return path
}

// firstLine returns the trimmed first line of a setting file.
func (config *Config) firstLine(name string) (string, bool) {
	path := config.settingFile(name)
	if path == "" {
		return "", false
	}
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return "", false
	}
	line := strings.TrimSpace(sc.Text())
	return line, line != ""
}

// LeapFile returns the leap second file to read. The "leapfile" setting must
// hold an absolute path, anything else is ignored.
func (config *Config) LeapFile() string {
	if path, ok := config.firstLine("leapfile"); ok {
		if filepath.IsAbs(path) {
			return filepath.Clean(path)
		}
		log.Warn().Str("leapfile", path).Msg("ignoring relative leap second file path")
	}
	return config.DefaultLeapFile
}

// Debug reports whether the "debug" setting exists.
func (config *Config) Debug() bool {
	path := config.settingFile("debug")
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// FormatOf guesses the syntax of a leap second file from its name:
// leap-seconds.list style files end in ".list".
func FormatOf(path string) leapsec.Format {
	if strings.HasSuffix(filepath.Base(path), ".list") {
		return leapsec.FormatNTPList
	}
	return leapsec.FormatTZ
}

// Source returns the leap second source for this configuration: the
// configured file, or the platform default when nothing is configured.
func (config *Config) Source() leapsec.Source {
	path := config.LeapFile()
	if path == "" {
		return leapsec.DefaultSource()
	}
	return leapsec.FileSource{Path: path, Format: FormatOf(path)}
}
