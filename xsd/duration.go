package xsd

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration is an xsd:duration value: P[-]?[nY][nM][nD][T[nH][nM][nS]].
// Components missing on the wire are zero. Re-encoding reproduces the same
// component layout, omitting zero components.
type Duration struct {
	Negative bool
	Years    uint64
	Months   uint64
	Days     uint64
	Hours    uint64
	Minutes  uint64
	Seconds  uint64
}

// ParseDuration parses the duration grammar above. The time section is
// optional; when present it must be introduced by 'T'.
func ParseDuration(s string) (Duration, error) {
	var d Duration
	sc := scanner{src: s}
	if !sc.literal('P') {
		return d, malformedDuration(s)
	}
	if sc.literal('-') {
		d.Negative = true
	}
	var err error
	if d.Years, err = sc.component('Y'); err != nil {
		return d, malformedDuration(s)
	}
	if d.Months, err = sc.component('M'); err != nil {
		return d, malformedDuration(s)
	}
	if d.Days, err = sc.component('D'); err != nil {
		return d, malformedDuration(s)
	}
	if sc.literal('T') {
		if d.Hours, err = sc.component('H'); err != nil {
			return d, malformedDuration(s)
		}
		if d.Minutes, err = sc.component('M'); err != nil {
			return d, malformedDuration(s)
		}
		if d.Seconds, err = sc.component('S'); err != nil {
			return d, malformedDuration(s)
		}
	}
	if !sc.eof() {
		return d, malformedDuration(s)
	}
	return d, nil
}

func malformedDuration(s string) error { return fmt.Errorf("xsd: invalid duration %q", s) }

func (d Duration) String() string {
	b := &strings.Builder{}
	b.WriteByte('P')
	if d.Negative {
		b.WriteByte('-')
	}
	if d.Years != 0 {
		fmt.Fprintf(b, "%dY", d.Years)
	}
	if d.Months != 0 {
		fmt.Fprintf(b, "%dM", d.Months)
	}
	if d.Days != 0 {
		fmt.Fprintf(b, "%dD", d.Days)
	}
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		b.WriteByte('T')
		if d.Hours != 0 {
			fmt.Fprintf(b, "%dH", d.Hours)
		}
		if d.Minutes != 0 {
			fmt.Fprintf(b, "%dM", d.Minutes)
		}
		if d.Seconds != 0 {
			fmt.Fprintf(b, "%dS", d.Seconds)
		}
	}
	if b.Len() == 1 || (d.Negative && b.Len() == 2) {
		// All components zero; emit the canonical zero duration.
		return "PT0S"
	}
	return b.String()
}

// scanner is a minimal cursor over the duration text.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) literal(c byte) bool {
	if s.eof() || s.src[s.pos] != c {
		return false
	}
	s.pos++
	return true
}

// component consumes an optional "<digits><suffix>" pair, returning zero when
// the upcoming text is not a number followed by that suffix.
func (s *scanner) component(suffix byte) (uint64, error) {
	start := s.pos
	end := s.pos
	for end < len(s.src) && s.src[end] >= '0' && s.src[end] <= '9' {
		end++
	}
	if end == start || end >= len(s.src) || s.src[end] != suffix {
		return 0, nil
	}
	n, err := strconv.ParseUint(s.src[start:end], 10, 64)
	if err != nil {
		return 0, err
	}
	s.pos = end + 1
	return n, nil
}
