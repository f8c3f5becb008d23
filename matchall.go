package rex

// CaptureMode selects which subset of each match's groups a Capture
// projection retains.
type CaptureMode int

const (
	// CaptureAll keeps every group unchanged.
	CaptureAll CaptureMode = iota
	// CaptureFirst keeps only group 1, or nothing when the pattern has no
	// capture group.
	CaptureFirst
	// CaptureAllButFirst drops the full-match slot and keeps the rest.
	CaptureAllButFirst
	// CaptureNamed keeps only the named groups.
	CaptureNamed
	// CaptureNone drops everything, erasing the matches themselves.
	CaptureNone
)

// String returns the mode's name.
func (c CaptureMode) String() string {
	switch c {
	case CaptureAll:
		return "all"
	case CaptureFirst:
		return "first"
	case CaptureAllButFirst:
		return "all-but-first"
	case CaptureNamed:
		return "named"
	case CaptureNone:
		return "none"
	}
	return "unknown"
}

// MatchAllResult is the immutable, ordered collection of every match of one
// pattern in one subject. Individual matches materialize lazily as
// MatchResult views sharing the collection's pattern and subject; the
// higher-order operations (Filter, Take, Capture, ...) build fresh
// collections without re-invoking the engine.
type MatchAllResult struct {
	pattern string
	subject string
	sets    []groupSet
}

// MatchAll matches the complete pattern string against subject and collects
// every match in subject order. Zero matches is a normal outcome with
// Count()==0, not an error.
func MatchAll(pattern, subject string) (*MatchAllResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.MatchAll(subject)
}

// MatchAllFrom is MatchAll starting at the given character offset.
func MatchAllFrom(pattern, subject string, offset int) (*MatchAllResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.MatchAllFrom(subject, offset)
}

// MatchAll collects every match of the pattern in subject order.
func (p Pattern) MatchAll(subject string) (*MatchAllResult, error) {
	return p.MatchAllFrom(subject, 0)
}

// MatchAllFrom collects every match starting at the given character offset.
func (p Pattern) MatchAllFrom(subject string, offset int) (*MatchAllResult, error) {
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	raws, err := e.MatchAll(subject, offset)
	if err != nil {
		return nil, &MatchError{Pattern: p.String(), Err: err}
	}

	result := &MatchAllResult{pattern: p.String(), subject: subject}
	for _, raw := range raws {
		result.sets = append(result.sets, newGroupSet(raw, false))
	}
	return result, nil
}

// derive builds a sibling collection sharing pattern and subject.
func (r *MatchAllResult) derive(sets []groupSet) *MatchAllResult {
	return &MatchAllResult{pattern: r.pattern, subject: r.subject, sets: sets}
}

// view materializes the i-th raw match as a MatchResult.
func (r *MatchAllResult) view(i int) *MatchResult {
	return &MatchResult{
		pattern: r.pattern,
		subject: r.subject,
		matched: true,
		set:     r.sets[i],
	}
}

// Count returns the number of matches.
func (r *MatchAllResult) Count() int {
	return len(r.sets)
}

// Matched reports whether the pattern matched at least once.
func (r *MatchAllResult) Matched() bool {
	return len(r.sets) > 0
}

// Results returns the full-match text of every match, in order.
func (r *MatchAllResult) Results() []string {
	out := make([]string, 0, len(r.sets))
	for _, set := range r.sets {
		if len(set.groups) > 0 {
			out = append(out, set.groups[0].Text)
		} else {
			out = append(out, "")
		}
	}
	return out
}

// First returns the first match, or nil when there are none.
func (r *MatchAllResult) First() *MatchResult {
	return r.Get(0)
}

// Last returns the last match, or nil when there are none.
func (r *MatchAllResult) Last() *MatchResult {
	return r.Get(len(r.sets) - 1)
}

// Get returns the i-th match, or nil when i is out of range.
func (r *MatchAllResult) Get(i int) *MatchResult {
	if i < 0 || i >= len(r.sets) {
		return nil
	}
	return r.view(i)
}

// All returns every match as a MatchResult, in order.
func (r *MatchAllResult) All() []*MatchResult {
	out := make([]*MatchResult, len(r.sets))
	for i := range r.sets {
		out[i] = r.view(i)
	}
	return out
}

// NamedCaptures returns, per match, the string-keyed subset of its groups.
func (r *MatchAllResult) NamedCaptures() []map[string]Group {
	out := make([]map[string]Group, len(r.sets))
	for i := range r.sets {
		out[i] = r.view(i).NamedGroups()
	}
	return out
}

// Pluck returns the named group's value from every match, in order. A match
// where the group is absent or did not participate contributes an unmatched
// Group for that slot.
func (r *MatchAllResult) Pluck(name string) []Group {
	out := make([]Group, len(r.sets))
	for i, set := range r.sets {
		if j, ok := set.names[name]; ok {
			out[i] = set.groups[j]
		} else {
			out[i] = Group{Position: InvalidPosition()}
		}
	}
	return out
}

// PluckGroup is Pluck keyed by capture slot instead of name.
func (r *MatchAllResult) PluckGroup(i int) []Group {
	out := make([]Group, len(r.sets))
	for j, set := range r.sets {
		if i >= 0 && i < len(set.groups) {
			out[j] = set.groups[i]
		} else {
			out[j] = Group{Position: InvalidPosition()}
		}
	}
	return out
}

// Filter returns a collection holding only the matches the predicate keeps,
// in their original order.
func (r *MatchAllResult) Filter(pred func(*MatchResult) bool) *MatchAllResult {
	var kept []groupSet
	for i := range r.sets {
		if pred(r.view(i)) {
			kept = append(kept, r.sets[i])
		}
	}
	return r.derive(kept)
}

// Each invokes fn on every match in order and returns the receiver for
// chaining.
func (r *MatchAllResult) Each(fn func(*MatchResult)) *MatchAllResult {
	for i := range r.sets {
		fn(r.view(i))
	}
	return r
}

// Take returns a collection holding the first n matches.
func (r *MatchAllResult) Take(n int) *MatchAllResult {
	if n < 0 {
		n = 0
	}
	if n > len(r.sets) {
		n = len(r.sets)
	}
	return r.derive(r.sets[:n])
}

// Skip returns a collection without the first n matches.
func (r *MatchAllResult) Skip(n int) *MatchAllResult {
	if n < 0 {
		n = 0
	}
	if n > len(r.sets) {
		n = len(r.sets)
	}
	return r.derive(r.sets[n:])
}

// Capture re-projects every match's group mapping per mode and returns the
// resulting collection. CaptureNone erases the matches themselves, so the
// projected collection reports Count()==0 regardless of the original count.
// Projections never re-invoke the engine.
func (r *MatchAllResult) Capture(mode CaptureMode) *MatchAllResult {
	switch mode {
	case CaptureAll:
		return r.derive(r.sets)
	case CaptureNone:
		return r.derive(nil)
	}

	projected := make([]groupSet, len(r.sets))
	for i, set := range r.sets {
		projected[i] = projectSet(set, mode)
	}
	return r.derive(projected)
}

// projectSet rebuilds one group mapping under a capture mode. Retained slots
// are re-keyed from zero; name aliases follow the slots they point at.
func projectSet(set groupSet, mode CaptureMode) groupSet {
	keep := func(slot int, named bool) bool {
		switch mode {
		case CaptureFirst:
			return slot == 1
		case CaptureAllButFirst:
			return slot > 0
		case CaptureNamed:
			return named
		}
		return true
	}

	nameOf := make(map[int]string, len(set.names))
	for name, slot := range set.names {
		nameOf[slot] = name
	}

	var out groupSet
	for slot, g := range set.groups {
		name, named := nameOf[slot]
		if !keep(slot, named) {
			continue
		}
		out.groups = append(out.groups, g)
		if named {
			if out.names == nil {
				out.names = make(map[string]int)
			}
			out.names[name] = len(out.groups) - 1
			out.nameOrder = append(out.nameOrder, name)
		}
	}
	return out
}

// Pattern returns the complete pattern string the collection was produced
// from.
func (r *MatchAllResult) Pattern() string {
	return r.pattern
}

// Subject returns the subject the pattern was matched against.
func (r *MatchAllResult) Subject() string {
	return r.subject
}

// Map applies fn to every match in order and collects the results.
func Map[T any](r *MatchAllResult, fn func(*MatchResult) T) []T {
	out := make([]T, 0, r.Count())
	for i := range r.sets {
		out = append(out, fn(r.view(i)))
	}
	return out
}

// Reduce folds fn over every match in order, starting from initial.
func Reduce[A any](r *MatchAllResult, fn func(A, *MatchResult) A, initial A) A {
	acc := initial
	for i := range r.sets {
		acc = fn(acc, r.view(i))
	}
	return acc
}
