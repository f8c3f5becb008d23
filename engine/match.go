package engine

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// Group is the raw outcome of one capture slot in one match.
//
// Index and Length are character (rune) offsets into the subject, matching
// the engine's rune-based coordinates. An unmatched group carries
// Matched=false and Index=-1; a matched but empty group carries Matched=true
// and Length=0 — the two are distinct on purpose.
type Group struct {
	// Number is the capture slot, 0 being the full match.
	Number int
	// Name is the group's declared name, empty for positional groups.
	Name string
	// Text is the captured text, empty when the group did not participate.
	Text string
	// Matched reports whether the group participated in the match.
	Matched bool
	// Index is the rune offset of the capture, -1 when unmatched.
	Index int
	// Length is the rune length of the capture.
	Length int
}

// Match is the raw outcome of a single successful match: one Group per
// capture slot, in slot order. Groups[0] is always the full match.
type Match struct {
	Groups []Group
}

// convertMatch flattens an engine match into slot-ordered raw groups.
func convertMatch(m *regexp2.Match) *Match {
	gs := m.Groups()
	out := &Match{Groups: make([]Group, len(gs))}
	for i := range gs {
		g := &gs[i]
		name := g.Name
		if name == strconv.Itoa(i) {
			// The engine reports positional groups under their decimal
			// number; treat those as unnamed.
			name = ""
		}
		raw := Group{Number: i, Name: name, Index: -1}
		if len(g.Captures) > 0 {
			raw.Text = g.String()
			raw.Matched = true
			raw.Index = g.Index
			raw.Length = g.Length
		}
		out.Groups[i] = raw
	}
	return out
}

// MatchFirst runs the pattern once against subject, starting at the given
// rune offset. A nil Match with a nil error means the pattern found nothing;
// errors are hard engine failures only (for example a timeout).
func (e *Engine) MatchFirst(subject string, startAt int) (*Match, error) {
	m, err := e.re.FindStringMatchStartingAt(subject, startAt)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return convertMatch(m), nil
}

// MatchAll collects every match of the pattern in subject order, starting at
// the given rune offset. The engine advances past empty matches itself, so
// the iteration always terminates.
func (e *Engine) MatchAll(subject string, startAt int) ([]*Match, error) {
	m, err := e.re.FindStringMatchStartingAt(subject, startAt)
	if err != nil {
		return nil, err
	}

	var all []*Match
	for m != nil {
		all = append(all, convertMatch(m))
		m, err = e.re.FindNextMatch(m)
		if err != nil {
			return nil, err
		}
	}
	return all, nil
}

// IsMatch reports whether the pattern matches subject at all.
func (e *Engine) IsMatch(subject string) (bool, error) {
	return e.re.MatchString(subject)
}

// countMatches counts matches in subject, stopping at limit when limit > 0.
func (e *Engine) countMatches(subject string, limit int) (int, error) {
	m, err := e.re.FindStringMatch(subject)
	if err != nil {
		return 0, err
	}

	count := 0
	for m != nil {
		count++
		if limit > 0 && count >= limit {
			break
		}
		m, err = e.re.FindNextMatch(m)
		if err != nil {
			return 0, err
		}
	}
	return count, nil
}
