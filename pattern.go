package rex

import (
	"strings"

	"github.com/coregx/rex/engine"
)

// DefaultDelimiter encloses the expression when a Pattern is built without
// choosing one explicitly.
const DefaultDelimiter = '/'

// Pattern is an immutable compiled-pattern descriptor: a bare expression
// (no delimiters), the delimiter character used by its string form, and an
// ordered modifier set.
//
// Pattern is a value type: every modifier operation returns a fresh Pattern
// and instances may be shared freely between goroutines.
//
// The string form is always
//
//	delimiter + expression + delimiter + modifiers
//
// and ParsePattern inverts it, so patterns round-trip losslessly.
type Pattern struct {
	expression string
	delimiter  rune
	modifiers  Modifiers
}

// NewPattern builds a Pattern around expression with the default '/'
// delimiter and no modifiers.
func NewPattern(expression string) Pattern {
	return NewPatternWithDelimiter(expression, DefaultDelimiter)
}

// NewPatternWithDelimiter builds a Pattern around expression with an explicit
// delimiter character and no modifiers.
func NewPatternWithDelimiter(expression string, delimiter rune) Pattern {
	return Pattern{expression: expression, delimiter: delimiter}
}

// ParsePattern parses a complete pattern string such as "/\d+/i".
//
// The first character is the delimiter; the last occurrence of that character
// in the rest of the string closes the expression, and everything after it is
// the modifier string. Returns a *CompileError when the string is shorter
// than two characters or the closing delimiter is missing.
func ParsePattern(complete string) (Pattern, error) {
	runes := []rune(complete)
	if len(runes) < 2 {
		return Pattern{}, &CompileError{
			Pattern: complete,
			Detail:  "pattern string must be at least two characters",
		}
	}

	delim := runes[0]
	closing := -1
	for i := len(runes) - 1; i >= 1; i-- {
		if runes[i] == delim {
			closing = i
			break
		}
	}
	if closing < 0 {
		return Pattern{}, &CompileError{
			Pattern: complete,
			Detail:  "closing delimiter " + string(delim) + " not found",
		}
	}

	return Pattern{
		expression: string(runes[1:closing]),
		delimiter:  delim,
		modifiers:  ParseModifiers(string(runes[closing+1:])),
	}, nil
}

// MustParsePattern is like ParsePattern but panics when the string is
// malformed. Useful for patterns known to be valid at compile time.
func MustParsePattern(complete string) Pattern {
	p, err := ParsePattern(complete)
	if err != nil {
		panic("rex: ParsePattern(`" + complete + "`): " + err.Error())
	}
	return p
}

// Expression returns the bare expression, without delimiters or modifiers.
func (p Pattern) Expression() string {
	return p.expression
}

// Delimiter returns the delimiter character of the pattern's string form.
func (p Pattern) Delimiter() rune {
	return p.delimiter
}

// Modifiers returns the pattern's modifier set.
func (p Pattern) Modifiers() Modifiers {
	return p.modifiers.clone()
}

// HasModifier reports whether m is in the pattern's modifier set.
func (p Pattern) HasModifier(m Modifier) bool {
	return p.modifiers.Contains(m)
}

// WithModifier returns a Pattern with m added. Adding a modifier that is
// already present is a no-op, not a duplicate.
func (p Pattern) WithModifier(m Modifier) Pattern {
	return Pattern{
		expression: p.expression,
		delimiter:  p.delimiter,
		modifiers:  p.modifiers.Add(m),
	}
}

// WithModifiers returns a Pattern with every listed modifier added, in order.
func (p Pattern) WithModifiers(ms ...Modifier) Pattern {
	out := p
	for _, m := range ms {
		out = out.WithModifier(m)
	}
	return out
}

// WithoutModifier returns a Pattern with m removed.
func (p Pattern) WithoutModifier(m Modifier) Pattern {
	return Pattern{
		expression: p.expression,
		delimiter:  p.delimiter,
		modifiers:  p.modifiers.Remove(m),
	}
}

// String reassembles the canonical complete pattern string:
// delimiter + expression + delimiter + modifier string.
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteRune(p.delimiter)
	b.WriteString(p.expression)
	b.WriteRune(p.delimiter)
	b.WriteString(p.modifiers.String())
	return b.String()
}

// Equal reports whether two Patterns have the same expression, delimiter and
// modifier set. Modifier insertion order does not affect equality.
func (p Pattern) Equal(other Pattern) bool {
	return p.expression == other.expression &&
		p.delimiter == other.delimiter &&
		p.modifiers.Equal(other.modifiers)
}

// GroupNames scans the expression text for named-group syntax in its three
// recognized spellings — (?<name>, (?P<name> and (?'name' — and returns the
// distinct names in first-occurrence order. This is a textual scan, not an
// engine call; it sees through invalid expressions and never errors.
func (p Pattern) GroupNames() []string {
	var names []string
	seen := make(map[string]bool)

	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	expr := p.expression
	for i := 0; i+2 < len(expr); i++ {
		if expr[i] == '\\' {
			i++
			continue
		}
		if expr[i] != '(' || expr[i+1] != '?' {
			continue
		}
		rest := expr[i+2:]
		switch {
		case strings.HasPrefix(rest, "P<"):
			add(readGroupName(rest[2:], '>'))
		case strings.HasPrefix(rest, "<=") || strings.HasPrefix(rest, "<!"):
			// Lookbehind, not a named group.
		case strings.HasPrefix(rest, "<"):
			add(readGroupName(rest[1:], '>'))
		case strings.HasPrefix(rest, "'"):
			add(readGroupName(rest[1:], '\''))
		}
	}
	return names
}

// readGroupName reads up to the terminator, accepting word characters only;
// anything else means the construct was not a named group after all.
func readGroupName(s string, terminator byte) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == terminator {
			return s[:i]
		}
		wordChar := c == '_' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9')
		if !wordChar {
			return ""
		}
	}
	return ""
}

// GroupCount returns the number of capture slots the compiled pattern
// reports: the full match plus one per capture group. Unlike GroupNames this
// consults the engine, so the pattern must compile.
func (p Pattern) GroupCount() (int, error) {
	e, err := p.compile()
	if err != nil {
		return 0, err
	}
	return e.GroupCount(), nil
}

// Validate checks the pattern against the engine, returning a *CompileError
// carrying the engine diagnostic when the expression does not compile.
func (p Pattern) Validate() error {
	if err := engine.Validate(p.expression, p.modifiers.flags()); err != nil {
		return &CompileError{Pattern: p.String(), Detail: err.Error(), Err: err}
	}
	return nil
}

// IsValid is the non-erroring form of Validate.
func (p Pattern) IsValid() bool {
	return p.Validate() == nil
}

// Validate parses and validates a complete pattern string, returning a
// *CompileError if the string form is malformed or the expression does not
// compile.
func Validate(complete string) error {
	p, err := ParsePattern(complete)
	if err != nil {
		return err
	}
	return p.Validate()
}

// IsValid is the non-erroring form of Validate.
func IsValid(complete string) bool {
	return Validate(complete) == nil
}

// compile hands the pattern to the engine adapter, wrapping any rejection in
// a *CompileError.
func (p Pattern) compile() (*engine.Engine, error) {
	e, err := engine.Compile(p.expression, p.modifiers.flags())
	if err != nil {
		return nil, &CompileError{Pattern: p.String(), Detail: err.Error(), Err: err}
	}
	return e, nil
}

// parse normalizes a complete pattern string for the operation entry points.
func parse(pattern string) (Pattern, error) {
	return ParsePattern(pattern)
}
