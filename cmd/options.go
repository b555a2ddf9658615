package cmd

import (
	"flag"
	"os"
	"time"

	"github.com/karasz/gtleap/gtconf"
	"github.com/karasz/gtleap/leapsec"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// options are the flags shared by every applet.
type options struct {
	configDir string
	leapFile  string
	verbose   bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configDir, "d", "", "config directory path")
	fs.StringVar(&o.leapFile, "f", "", "leap second file (tz leapseconds or leap-seconds.list)")
	fs.BoolVar(&o.verbose, "v", false, "enable debug logging")
}

func (o *options) config() *gtconf.Config {
	return &gtconf.Config{ConfigDir: o.configDir, DefaultLeapFile: o.leapFile}
}

// converter sets up logging and returns a converter over the configured
// leap second source.
func (o *options) converter() *leapsec.Converter {
	config := o.config()
	setupLogging(o.verbose || config.Debug())
	return leapsec.NewConverter(config.Source())
}

func setupLogging(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
