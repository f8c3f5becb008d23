package rex

import (
	"strings"

	"github.com/coregx/rex/engine"
)

// Modifier is a single-letter pattern flag. The set of modifiers is closed;
// values outside the ten constants below are not modifiers and are dropped
// by ParseModifiers.
type Modifier rune

const (
	// CaseInsensitive makes letters match regardless of case.
	CaseInsensitive Modifier = 'i'
	// Multiline makes ^ and $ match at line boundaries.
	Multiline Modifier = 'm'
	// DotAll makes . match newlines.
	DotAll Modifier = 's'
	// Extended ignores unescaped whitespace and # comments in the expression.
	Extended Modifier = 'x'
	// UTF8 enables Unicode-aware matching.
	UTF8 Modifier = 'u'
	// Anchored constrains matches to start at the search position.
	Anchored Modifier = 'A'
	// DollarEndOnly makes $ match only at the very end of the subject.
	DollarEndOnly Modifier = 'D'
	// Ungreedy inverts quantifier greediness.
	Ungreedy Modifier = 'U'
	// DuplicateNames permits reusing a capture group name.
	DuplicateNames Modifier = 'J'
	// Study hints that the pattern is worth extra compile-time analysis.
	Study Modifier = 'S'
)

// modifierOrder lists every Modifier once; used to recognize parse input.
var modifierOrder = []Modifier{
	CaseInsensitive, Multiline, DotAll, Extended, UTF8,
	Anchored, DollarEndOnly, Ungreedy, DuplicateNames, Study,
}

// String returns the modifier's canonical single-character form.
func (m Modifier) String() string {
	return string(rune(m))
}

// Description returns a short human-readable account of the modifier.
func (m Modifier) Description() string {
	switch m {
	case CaseInsensitive:
		return "case-insensitive matching"
	case Multiline:
		return "^ and $ match at line boundaries"
	case DotAll:
		return ". matches newlines"
	case Extended:
		return "whitespace and comments ignored in pattern"
	case UTF8:
		return "Unicode-aware matching"
	case Anchored:
		return "match anchored to the search position"
	case DollarEndOnly:
		return "$ matches only at end of subject"
	case Ungreedy:
		return "quantifiers are lazy by default"
	case DuplicateNames:
		return "duplicate group names allowed"
	case Study:
		return "extra pattern analysis hint"
	}
	return "unknown modifier"
}

// isModifier reports whether r is one of the ten recognized modifiers.
func isModifier(r rune) bool {
	for _, m := range modifierOrder {
		if rune(m) == r {
			return true
		}
	}
	return false
}

// Modifiers is an ordered, duplicate-free set of pattern modifiers.
// Insertion order is preserved so that serialization is deterministic.
//
// The set is treated as immutable: Add and Remove return fresh sets and
// never alias the receiver's backing storage.
type Modifiers []Modifier

// ParseModifiers builds a modifier set from its string form. Unrecognized
// characters are skipped silently, never reported as an error, so any
// well-formed modifier string round-trips through String.
func ParseModifiers(text string) Modifiers {
	var set Modifiers
	for _, r := range text {
		if isModifier(r) {
			set = set.Add(Modifier(r))
		}
	}
	return set
}

// Contains reports whether m is in the set.
func (s Modifiers) Contains(m Modifier) bool {
	for _, have := range s {
		if have == m {
			return true
		}
	}
	return false
}

// Add returns a set with m appended. Adding a modifier already present
// returns an equal set, not a duplicate.
func (s Modifiers) Add(m Modifier) Modifiers {
	if s.Contains(m) {
		return s.clone()
	}
	out := make(Modifiers, len(s), len(s)+1)
	copy(out, s)
	return append(out, m)
}

// Remove returns a set without m, preserving the order of the rest.
func (s Modifiers) Remove(m Modifier) Modifiers {
	out := make(Modifiers, 0, len(s))
	for _, have := range s {
		if have != m {
			out = append(out, have)
		}
	}
	return out
}

// Equal reports whether the two sets hold the same modifiers, in any order.
func (s Modifiers) Equal(other Modifiers) bool {
	if len(s) != len(other) {
		return false
	}
	for _, m := range s {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

// String concatenates the canonical characters in set order. It is the
// inverse of ParseModifiers.
func (s Modifiers) String() string {
	var b strings.Builder
	for _, m := range s {
		b.WriteRune(rune(m))
	}
	return b.String()
}

// flags translates the set into the engine adapter's flag bits.
func (s Modifiers) flags() engine.Flags {
	var f engine.Flags
	for _, m := range s {
		switch m {
		case CaseInsensitive:
			f |= engine.FlagCaseInsensitive
		case Multiline:
			f |= engine.FlagMultiline
		case DotAll:
			f |= engine.FlagDotAll
		case Extended:
			f |= engine.FlagExtended
		case UTF8:
			f |= engine.FlagUnicode
		case Anchored:
			f |= engine.FlagAnchored
		case DollarEndOnly:
			f |= engine.FlagDollarEndOnly
		case Ungreedy:
			f |= engine.FlagUngreedy
		case DuplicateNames:
			f |= engine.FlagDuplicateNames
		case Study:
			f |= engine.FlagStudy
		}
	}
	return f
}

func (s Modifiers) clone() Modifiers {
	out := make(Modifiers, len(s))
	copy(out, s)
	return out
}
