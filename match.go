package rex

import "github.com/coregx/rex/engine"

// Group is one capture slot of a match as seen by callers: its text, whether
// it participated in the match, and — when offset capture was requested — the
// character range it spans.
//
// A group that is part of the pattern but did not participate carries
// Matched=false; its Text is empty and its Position invalid. A group that
// matched the empty string carries Matched=true with empty Text. The two are
// deliberately distinct.
type Group struct {
	Text     string
	Matched  bool
	Position Position
}

// groupSet is the slot-ordered group mapping shared by MatchResult and
// MatchAllResult: indexed groups plus a name alias table pointing into the
// same slots.
type groupSet struct {
	groups    []Group
	names     map[string]int
	nameOrder []string
}

// newGroupSet shapes a raw engine match into the slot/name mapping.
// Positions are populated only when offset capture was requested.
func newGroupSet(m *engine.Match, withPositions bool) groupSet {
	set := groupSet{groups: make([]Group, len(m.Groups))}
	for i, raw := range m.Groups {
		g := Group{Text: raw.Text, Matched: raw.Matched, Position: InvalidPosition()}
		if withPositions && raw.Matched {
			g.Position = Position{Start: raw.Index, Length: raw.Length}
		}
		set.groups[i] = g
		if raw.Name != "" {
			if set.names == nil {
				set.names = make(map[string]int)
			}
			if _, dup := set.names[raw.Name]; !dup {
				set.names[raw.Name] = i
				set.nameOrder = append(set.nameOrder, raw.Name)
			}
		}
	}
	return set
}

// MatchResult is the immutable outcome of matching one pattern against one
// subject: whether it matched, the captured groups keyed by slot and by name
// (unmatched groups present with a null-like value, never absent), and
// optionally the position of every capture.
type MatchResult struct {
	pattern string
	subject string
	matched bool
	offsets bool
	set     groupSet
}

// Match matches the complete pattern string (for example "/\d+/i") against
// subject and returns the wrapped outcome. "No match" is a normal result with
// Matched()==false; the error is non-nil only for a malformed or uncompilable
// pattern (*CompileError) or a hard engine failure (*MatchError).
func Match(pattern, subject string) (*MatchResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.Match(subject)
}

// MatchFrom is Match starting at the given character offset into subject.
func MatchFrom(pattern, subject string, offset int) (*MatchResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.MatchFrom(subject, offset)
}

// MatchWithOffsets is Match with offset capture: every group of the result
// additionally carries its Position within the subject.
func MatchWithOffsets(pattern, subject string) (*MatchResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.MatchWithOffsets(subject)
}

// Test reports whether the complete pattern string matches subject.
func Test(pattern, subject string) (bool, error) {
	p, err := parse(pattern)
	if err != nil {
		return false, err
	}
	return p.Test(subject)
}

// Match matches the pattern against subject.
func (p Pattern) Match(subject string) (*MatchResult, error) {
	return p.matchAt(subject, 0, false)
}

// MatchFrom matches the pattern against subject starting at the given
// character offset.
func (p Pattern) MatchFrom(subject string, offset int) (*MatchResult, error) {
	return p.matchAt(subject, offset, false)
}

// MatchWithOffsets matches the pattern against subject and records the
// Position of every participating group.
func (p Pattern) MatchWithOffsets(subject string) (*MatchResult, error) {
	return p.matchAt(subject, 0, true)
}

// Test reports whether the pattern matches subject.
func (p Pattern) Test(subject string) (bool, error) {
	m, err := p.Match(subject)
	if err != nil {
		return false, err
	}
	return m.Matched(), nil
}

func (p Pattern) matchAt(subject string, offset int, withPositions bool) (*MatchResult, error) {
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	raw, err := e.MatchFirst(subject, offset)
	if err != nil {
		return nil, &MatchError{Pattern: p.String(), Err: err}
	}

	result := &MatchResult{
		pattern: p.String(),
		subject: subject,
		offsets: withPositions,
	}
	if raw != nil {
		result.matched = true
		result.set = newGroupSet(raw, withPositions)
	}
	return result, nil
}

// Matched reports whether the pattern matched the subject at all.
func (m *MatchResult) Matched() bool {
	return m.matched
}

// Result returns the full match text (group 0), or the empty string when the
// pattern did not match or a Capture projection dropped every group. Use
// Matched to tell an empty match from no match.
func (m *MatchResult) Result() string {
	if !m.matched || len(m.set.groups) == 0 {
		return ""
	}
	return m.set.groups[0].Text
}

// ResultOr returns the full match text, or def when the pattern did not match
// or no group survived a Capture projection.
func (m *MatchResult) ResultOr(def string) string {
	if !m.matched || len(m.set.groups) == 0 {
		return def
	}
	return m.set.groups[0].Text
}

// HasGroup reports whether the pattern defines a capture slot i.
// Slot 0 is the full match.
func (m *MatchResult) HasGroup(i int) bool {
	return i >= 0 && i < len(m.set.groups)
}

// HasNamedGroup reports whether the pattern defines a group named name.
func (m *MatchResult) HasNamedGroup(name string) bool {
	_, ok := m.set.names[name]
	return ok
}

// GroupMatched reports whether slot i exists and participated in the match.
func (m *MatchResult) GroupMatched(i int) bool {
	return m.HasGroup(i) && m.set.groups[i].Matched
}

// NamedGroupMatched reports whether a group named name exists and
// participated in the match.
func (m *MatchResult) NamedGroupMatched(name string) bool {
	i, ok := m.set.names[name]
	return ok && m.set.groups[i].Matched
}

// Group returns the text of capture slot i.
//
// A slot the pattern never defines yields a *GroupNotFoundError. A slot that
// exists but did not participate in this match is not an error: it returns
// the empty string, with GroupMatched(i) reporting false — the null-vs-absent
// distinction callers rely on.
func (m *MatchResult) Group(i int) (string, error) {
	if !m.HasGroup(i) {
		return "", &GroupNotFoundError{Index: i}
	}
	return m.set.groups[i].Text, nil
}

// NamedGroup returns the text of the group named name, with the same
// existence semantics as Group.
func (m *MatchResult) NamedGroup(name string) (string, error) {
	i, ok := m.set.names[name]
	if !ok {
		return "", &GroupNotFoundError{Name: name}
	}
	return m.set.groups[i].Text, nil
}

// GroupOr returns the text of slot i, or def when the slot is absent or did
// not participate. It never returns an error.
func (m *MatchResult) GroupOr(i int, def string) string {
	if !m.GroupMatched(i) {
		return def
	}
	return m.set.groups[i].Text
}

// NamedGroupOr returns the text of the named group, or def when the group is
// absent or did not participate. It never returns an error.
func (m *MatchResult) NamedGroupOr(name string, def string) string {
	if !m.NamedGroupMatched(name) {
		return def
	}
	return m.set.groups[m.set.names[name]].Text
}

// Groups returns every capture slot in order, slot 0 first.
// The slice is a copy; mutating it does not affect the result.
func (m *MatchResult) Groups() []Group {
	out := make([]Group, len(m.set.groups))
	copy(out, m.set.groups)
	return out
}

// IndexedGroups is Groups under its key-space name: the positional subset of
// the group mapping. Named groups alias positional slots, so the content is
// identical to Groups.
func (m *MatchResult) IndexedGroups() []Group {
	return m.Groups()
}

// NamedGroups returns the string-keyed subset of the group mapping.
func (m *MatchResult) NamedGroups() map[string]Group {
	out := make(map[string]Group, len(m.set.names))
	for name, i := range m.set.names {
		out[name] = m.set.groups[i]
	}
	return out
}

// GroupNames returns the names of the named groups in declaration order.
func (m *MatchResult) GroupNames() []string {
	out := make([]string, len(m.set.nameOrder))
	copy(out, m.set.nameOrder)
	return out
}

// Position returns the character range of capture slot i. The existence
// semantics match Group: an undefined slot is a *GroupNotFoundError, while a
// non-participating slot returns the invalid Position. Positions are only
// recorded by the offset-capturing entry points; otherwise every Position is
// invalid.
func (m *MatchResult) Position(i int) (Position, error) {
	if !m.HasGroup(i) {
		return InvalidPosition(), &GroupNotFoundError{Index: i}
	}
	return m.set.groups[i].Position, nil
}

// NamedPosition returns the character range of the named group, with the
// same semantics as Position.
func (m *MatchResult) NamedPosition(name string) (Position, error) {
	i, ok := m.set.names[name]
	if !ok {
		return InvalidPosition(), &GroupNotFoundError{Name: name}
	}
	return m.set.groups[i].Position, nil
}

// Positions returns the Position of every capture slot in order.
func (m *MatchResult) Positions() []Position {
	out := make([]Position, len(m.set.groups))
	for i, g := range m.set.groups {
		out[i] = g.Position
	}
	return out
}

// Pattern returns the complete pattern string the result was produced from.
func (m *MatchResult) Pattern() string {
	return m.pattern
}

// Subject returns the subject the pattern was matched against.
func (m *MatchResult) Subject() string {
	return m.subject
}

// WhenMatched invokes fn when the pattern matched and returns the receiver
// for chaining.
func (m *MatchResult) WhenMatched(fn func(*MatchResult)) *MatchResult {
	if m.matched {
		fn(m)
	}
	return m
}

// WhenFailed invokes fn when the pattern did not match and returns the
// receiver for chaining.
func (m *MatchResult) WhenFailed(fn func(*MatchResult)) *MatchResult {
	if !m.matched {
		fn(m)
	}
	return m
}

// MapMatch applies fn to the result and returns its value. When the pattern
// did not match, fn is not invoked and the zero value is returned with
// ok=false.
func MapMatch[T any](m *MatchResult, fn func(*MatchResult) T) (value T, ok bool) {
	if !m.Matched() {
		return value, false
	}
	return fn(m), true
}
