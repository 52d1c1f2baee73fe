// Package timespan converts the ISO-8601 style duration strings carried
// by video metadata (e.g. "P0DT1H2M3S", "PT45S") into second counts and
// renders second counts as mixed-unit human-readable text.
//
// Both directions are pure functions with no I/O.
package timespan

import (
	"fmt"
	"strconv"
	"strings"
)

// Span is a signed duration in whole seconds.
type Span int64

// ParseError indicates a duration string could not be parsed.
type ParseError struct {
	// Input is the rejected duration string.
	Input string
}

// Error returns a string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse duration %q", e.Input)
}

// Unit is a decomposition unit for rendering spans.
type Unit int

const (
	// Seconds renders everything as a flat second count.
	Seconds Unit = iota
	// Minutes subdivides up to minutes.
	Minutes
	// Hours subdivides up to hours.
	Hours
	// Days subdivides up to days.
	Days
)

var unitSeconds = [...]int64{1, 60, 3600, 86400}
var unitNames = [...]string{"second", "minute", "hour", "day"}

// String returns the singular unit name.
func (u Unit) String() string {
	if u < Seconds || u > Days {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Parse converts a duration of the form "P[nD][T[nH][nM][nS]]" into a
// Span. At least one component must be present; wrong or out-of-order
// designators, non-numeric magnitudes, week components and fractional
// seconds are all rejected with a *ParseError.
func Parse(s string) (Span, error) {
	fail := func() (Span, error) { return 0, &ParseError{Input: s} }

	rest, ok := strings.CutPrefix(s, "P")
	if !ok {
		return fail()
	}

	takeNumber := func() (int64, bool) {
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return 0, false
		}
		n, err := strconv.ParseInt(rest[:i], 10, 64)
		if err != nil {
			return 0, false
		}
		rest = rest[i:]
		return n, true
	}

	var total int64
	components := 0

	// Date part: only days are recognized.
	if rest != "" && rest[0] != 'T' {
		n, ok := takeNumber()
		if !ok || rest == "" || rest[0] != 'D' {
			return fail()
		}
		rest = rest[1:]
		total += n * unitSeconds[Days]
		components++
	}

	// Time part: hours, minutes, seconds, in that order.
	if rest != "" {
		if rest[0] != 'T' {
			return fail()
		}
		rest = rest[1:]
		if rest == "" {
			// Dangling time designator ("PT", "P1DT").
			return fail()
		}
		last := Days
		for rest != "" {
			n, ok := takeNumber()
			if !ok || rest == "" {
				return fail()
			}
			var unit Unit
			switch rest[0] {
			case 'H':
				unit = Hours
			case 'M':
				unit = Minutes
			case 'S':
				unit = Seconds
			default:
				return fail()
			}
			if unit >= last {
				return fail()
			}
			rest = rest[1:]
			last = unit
			total += n * unitSeconds[unit]
			components++
		}
	}

	if components == 0 {
		return fail()
	}
	return Span(total), nil
}

// Seconds returns the span as a plain second count.
func (s Span) Seconds() int64 {
	return int64(s)
}

// Part is one component of a mixed-unit decomposition.
type Part struct {
	Unit  Unit
	Count int64
}

// Decompose greedily extracts whole units from the span, largest first,
// stopping the subdivision at the given ceiling. Zero-valued components
// are omitted except that the seconds component is always present when
// every other component is zero, so the result is never empty.
//
// Multiplying every part by its unit's second count and summing yields
// the original span.
func (s Span) Decompose(ceiling Unit) []Part {
	rem := int64(s)
	var parts []Part
	for u := ceiling; u >= Seconds; u-- {
		count := rem / unitSeconds[u]
		rem -= count * unitSeconds[u]
		if count != 0 || (u == Seconds && len(parts) == 0) {
			parts = append(parts, Part{Unit: u, Count: count})
		}
	}
	return parts
}

// Humanize renders the span as mixed-unit text, e.g. Span(90061)
// with a Days ceiling becomes "1 day 1 hour 1 minute 1 second".
// Unit names are pluralized for counts other than one and components
// are joined by single spaces.
func (s Span) Humanize(ceiling Unit) string {
	var b strings.Builder
	for i, p := range s.Decompose(ceiling) {
		if i > 0 {
			b.WriteByte(' ')
		}
		name := unitNames[p.Unit]
		if p.Count != 1 {
			name += "s"
		}
		fmt.Fprintf(&b, "%d %s", p.Count, name)
	}
	return b.String()
}
