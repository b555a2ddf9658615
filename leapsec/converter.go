package leapsec

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Converter resolves UTC/TAI offsets from the compiled table and, past
// ExpiresUTC, from the leap seconds of its Source. The Source is queried at
// most once; the result, empty on failure, is kept for the lifetime of the
// Converter. A Converter is safe for concurrent use.
type Converter struct {
	src Source

	once sync.Once
	supp Table
}

// NewConverter returns a Converter consulting src once the compiled table
// has expired. A nil src behaves like Unavailable.
func NewConverter(src Source) *Converter {
	if src == nil {
		src = Unavailable{}
	}
	return &Converter{src: src}
}

var defaultConverter = NewConverter(DefaultSource())

// Default returns the process wide Converter over DefaultSource.
func Default() *Converter {
	return defaultConverter
}

func (c *Converter) supplement() Table {
	c.once.Do(func() {
		t, ok := c.src.LeapSeconds()
		if !ok {
			log.Debug().Msg("no supplementary leap seconds, offsets freeze at the compiled table")
			return
		}
		t = t.Since(ExpiresUTC)
		if err := t.Validate(); err != nil {
			log.Warn().Err(err).Msg("ignoring supplementary leap seconds")
			return
		}
		log.Debug().Int("events", len(t)).Msg("supplementary leap seconds loaded")
		c.supp = t
	})
	return c.supp
}

// Supplement returns the leap seconds learned from the Source, querying it
// if that has not happened yet.
func (c *Converter) Supplement() Table {
	return c.supplement().clone()
}

// Effective returns the compiled table followed by the supplementary events.
func (c *Converter) Effective() Table {
	supp := c.supplement()
	t := make(Table, 0, len(static)+len(supp))
	t = append(t, static...)
	return append(t, supp...)
}

// OffsetAtUTC returns TAI-UTC in seconds at the UTC second sec.
func (c *Converter) OffsetAtUTC(sec int64) int64 {
	if sec >= ExpiresUTC {
		if off, ok := c.supplement().OffsetUTC(sec); ok {
			return off
		}
	}
	if off, ok := static.OffsetUTC(sec); ok {
		return off
	}
	return FirstOffset
}

// OffsetAtTAI returns TAI-UTC in seconds at the TAI second sec.
func (c *Converter) OffsetAtTAI(sec int64) int64 {
	if sec >= ExpiresTAI {
		if off, ok := c.supplement().OffsetTAI(sec); ok {
			return off
		}
	}
	if off, ok := static.OffsetTAI(sec); ok {
		return off
	}
	return FirstOffset
}

// ToTAI converts Unix seconds to TAI seconds since 1970-01-01T00:00:00 TAI.
func (c *Converter) ToTAI(utc int64) int64 {
	return utc + c.OffsetAtUTC(utc)
}

// ToUTC converts TAI seconds to Unix seconds. An inserted leap second maps
// to the first second after it.
func (c *Converter) ToUTC(tai int64) int64 {
	return tai - c.OffsetAtTAI(tai)
}

// IsLeapSecond reports whether the TAI second sec is an inserted leap
// second, which has no UTC second of its own.
func (c *Converter) IsLeapSecond(sec int64) bool {
	return c.ToTAI(c.ToUTC(sec)) != sec
}

// ToTAI converts with the Default converter.
func ToTAI(utc int64) int64 {
	return defaultConverter.ToTAI(utc)
}

// ToUTC converts with the Default converter.
func ToUTC(tai int64) int64 {
	return defaultConverter.ToUTC(tai)
}
