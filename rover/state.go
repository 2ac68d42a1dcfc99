package rover

import (
	"strings"
)

// Location is one of the three mission sites.
type Location string

const (
	Station Location = "station"
	Sample  Location = "sample"
	Battery Location = "battery"
)

// State is a rover configuration. It is a plain value; actions return
// modified copies.
type State struct {
	Loc             Location
	SampleExtracted bool
	HoldingSample   bool
	Charged         bool
	HoldingTool     bool
}

// Start is the initial state: parked at the station with nothing done.
func Start() State { return State{Loc: Station} }

// Key encodes every attribute, e.g. "station:00000".
func (s State) Key() string {
	var b strings.Builder
	b.Grow(len(s.Loc) + 6)
	b.WriteString(string(s.Loc))
	b.WriteByte(':')
	for _, f := range [...]bool{s.SampleExtracted, s.HoldingSample, s.Charged, s.HoldingTool} {
		if f {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// String renders s on one line for reports.
func (s State) String() string {
	var flags []string
	if s.SampleExtracted {
		flags = append(flags, "extracted")
	}
	if s.HoldingSample {
		flags = append(flags, "holding-sample")
	}
	if s.HoldingTool {
		flags = append(flags, "holding-tool")
	}
	if s.Charged {
		flags = append(flags, "charged")
	}
	if len(flags) == 0 {
		return string(s.Loc)
	}

	return string(s.Loc) + " [" + strings.Join(flags, " ") + "]"
}
