// Package engine adapts the underlying regex engine (dlclark/regexp2) to the
// primitive surface the rex result layer is built on: match-first at an
// offset, match iteration, replace with substitution counting, split with
// empty-segment suppression, and pattern validation.
//
// engine.go contains the Engine struct, flag translation and compilation.
//
// The package deliberately exposes raw, untyped output (group slices with
// matched/unmatched marks and rune offsets); shaping that output into
// queryable result objects is the job of the rex package.
package engine

import (
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
)

// Flags is the set of pattern flags understood by the adapter, one bit per
// pattern modifier.
//
// Not every flag changes engine behavior. The underlying engine allows
// duplicate group names natively, so FlagDuplicateNames is satisfied by
// default. FlagStudy is an optimization hint with no engine counterpart and is
// dropped. FlagDollarEndOnly and FlagUngreedy have no engine option; they are
// accepted so that patterns carrying them still compile, but matching
// semantics are unchanged.
type Flags uint16

const (
	// FlagCaseInsensitive makes letters match regardless of case.
	FlagCaseInsensitive Flags = 1 << iota
	// FlagMultiline makes ^ and $ match at line boundaries.
	FlagMultiline
	// FlagDotAll makes . match newlines.
	FlagDotAll
	// FlagExtended ignores unescaped whitespace and # comments in the pattern.
	FlagExtended
	// FlagUnicode enables Unicode-aware character classes.
	FlagUnicode
	// FlagAnchored constrains matches to start at the search position.
	FlagAnchored
	// FlagDollarEndOnly would make $ match only at the very end of the
	// subject. Accepted but inert; see the Flags doc.
	FlagDollarEndOnly
	// FlagUngreedy would invert quantifier greediness. Accepted but inert.
	FlagUngreedy
	// FlagDuplicateNames permits reusing a group name. The engine allows this
	// natively, so the flag is a no-op.
	FlagDuplicateNames
	// FlagStudy is an optimization hint with no effect.
	FlagStudy
)

// DefaultTimeout bounds a single engine call. Zero means no limit.
//
// Applied at Compile time; adjust per-Engine via SetTimeout.
var DefaultTimeout time.Duration

// Engine is a compiled pattern bound to the underlying regex engine.
//
// An Engine is immutable after compilation (SetTimeout excepted, which must
// happen before the Engine is shared) and safe for concurrent use.
type Engine struct {
	re    *regexp2.Regexp
	expr  string
	flags Flags
}

// options translates the portable flag set into engine options.
func (f Flags) options() regexp2.RegexOptions {
	var opts regexp2.RegexOptions
	if f&FlagCaseInsensitive != 0 {
		opts |= regexp2.IgnoreCase
	}
	if f&FlagMultiline != 0 {
		opts |= regexp2.Multiline
	}
	if f&FlagDotAll != 0 {
		opts |= regexp2.Singleline
	}
	if f&FlagExtended != 0 {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if f&FlagUnicode != 0 {
		opts |= regexp2.Unicode
	}
	return opts
}

// Compile compiles expression (without delimiters) under the given flags.
//
// An anchored compile wraps the expression in \G(?:...) because the engine
// has no anchored option. \G asserts the position where the search began, so
// a match at a nonzero start offset anchors to that offset, not to the
// subject start. The wrap preserves capture group numbering since (?: does
// not capture.
func Compile(expression string, flags Flags) (*Engine, error) {
	expr := expression
	if flags&FlagAnchored != 0 {
		expr = `\G(?:` + expression + `)`
	}

	re, err := regexp2.Compile(expr, flags.options())
	if err != nil {
		return nil, err
	}
	if DefaultTimeout > 0 {
		re.MatchTimeout = DefaultTimeout
	}

	return &Engine{
		re:    re,
		expr:  expression,
		flags: flags,
	}, nil
}

// Validate reports whether expression compiles under flags, returning the
// engine diagnostic when it does not.
func Validate(expression string, flags Flags) error {
	_, err := Compile(expression, flags)
	return err
}

// SetTimeout bounds every subsequent call on this Engine.
// Must be called before the Engine is shared between goroutines.
func (e *Engine) SetTimeout(d time.Duration) {
	e.re.MatchTimeout = d
}

// Expression returns the expression the Engine was compiled from,
// without the anchoring wrap.
func (e *Engine) Expression() string {
	return e.expr
}

// Flags returns the flag set the Engine was compiled under.
func (e *Engine) Flags() Flags {
	return e.flags
}

// GroupCount returns the number of capture slots the compiled pattern
// reports: the full-match slot plus one per capture group.
func (e *Engine) GroupCount() int {
	return len(e.re.GetGroupNumbers())
}

// GroupNames returns the names of the named capture groups in slot order.
// Unnamed groups are skipped.
func (e *Engine) GroupNames() []string {
	var names []string
	for _, n := range e.re.GetGroupNumbers() {
		name := e.re.GroupNameFromNumber(n)
		if name != "" && name != strconv.Itoa(n) {
			names = append(names, name)
		}
	}
	return names
}
