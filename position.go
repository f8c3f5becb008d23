package rex

// Position is the character range a capture occupies within a subject:
// a start offset and a length, both counted in runes rather than bytes so
// that multi-byte subjects slice correctly.
//
// The zero-capture sentinel is a Position with Start == -1; it marks a group
// that did not participate in its match when offset capture was requested.
// Use IsValid to tell the two apart.
type Position struct {
	Start  int
	Length int
}

// InvalidPosition returns the sentinel Position of a group that did not
// participate in a match.
func InvalidPosition() Position {
	return Position{Start: -1}
}

// End returns the offset one past the last character of the range.
func (p Position) End() int {
	return p.Start + p.Length
}

// IsValid reports whether the Position describes a real range.
func (p Position) IsValid() bool {
	return p.Start >= 0
}

// Contains reports whether other lies entirely within p.
// A Position contains itself.
func (p Position) Contains(other Position) bool {
	return p.Start <= other.Start && p.End() >= other.End()
}

// Overlaps reports whether p and other share at least one character.
// Adjacent ranges, where one ends exactly where the other starts, do not
// overlap.
func (p Position) Overlaps(other Position) bool {
	return p.Start < other.End() && p.End() > other.Start
}

// Extract returns the substring of subject the Position spans. The slice is
// character-aware: offsets index runes, not bytes. Returns the empty string
// for an invalid Position or a range that falls outside the subject.
func (p Position) Extract(subject string) string {
	if !p.IsValid() {
		return ""
	}
	runes := []rune(subject)
	if p.Start > len(runes) || p.End() > len(runes) {
		return ""
	}
	return string(runes[p.Start:p.End()])
}
