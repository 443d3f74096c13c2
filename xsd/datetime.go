// Package xsd implements the textual codecs for the XSD scalar types the
// vocabulary uses (xsd:dateTime and xsd:duration). It is independent of the
// binding engine; values parse from and format back to wire strings.
package xsd

import (
	"fmt"
	"time"
)

const naiveLayout = "2006-01-02T15:04:05.999999999"

// DateTime is an xsd:dateTime value. The input grammar is remembered: values
// parsed with an explicit offset re-encode as RFC3339 with seconds precision,
// values parsed without one re-encode in the naive layout with a 4-digit
// fractional-second suffix.
type DateTime struct {
	t     time.Time
	naive bool
}

// ParseDateTime parses either RFC3339 (explicit offset) or the naive
// %Y-%m-%dT%H:%M:%S[.fraction] grammar.
func ParseDateTime(s string) (DateTime, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateTime{t: t}, nil
	}
	if t, err := time.Parse(naiveLayout, s); err == nil {
		return DateTime{t: t, naive: true}, nil
	}
	return DateTime{}, fmt.Errorf("xsd: invalid dateTime %q", s)
}

// Time returns the parsed instant. Naive values carry UTC as a placeholder
// zone.
func (d DateTime) Time() time.Time { return d.t }

// Naive reports whether the value was parsed without an offset.
func (d DateTime) Naive() bool { return d.naive }

// Equal compares instants and grammar variants.
func (d DateTime) Equal(o DateTime) bool { return d.naive == o.naive && d.t.Equal(o.t) }

func (d DateTime) String() string {
	if d.naive {
		millis := d.t.Nanosecond() / int(time.Millisecond)
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%04d",
			d.t.Year(), int(d.t.Month()), d.t.Day(),
			d.t.Hour(), d.t.Minute(), d.t.Second(), millis)
	}
	return d.t.Format(time.RFC3339)
}
