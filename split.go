package rex

import "strings"

// SplitResult is the immutable, ordered list of segments produced by
// splitting a subject by a pattern. Zero-length segments never appear: the
// split operation drops them whether they arise from adjacent delimiters,
// delimiters at the subject's edges, or empty delimiter captures.
type SplitResult struct {
	pattern  string
	subject  string
	segments []string
}

// Split slices subject into the segments between matches of the complete
// pattern string. limit > 0 caps the number of segments, the last being the
// unsplit remainder; limit < 0 means no cap; limit == 0 yields no segments.
// Failures are *CompileError or *SplitError.
func Split(pattern, subject string, limit int) (*SplitResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.Split(subject, limit)
}

// SplitWithDelimiters is Split with delimiter retention: the captured text of
// each delimiter match is kept in the segment sequence between the segments
// it separates. Only captured delimiter text survives the underlying split,
// so when the pattern's expression is not already wrapped in a capturing
// group it is wrapped in one before compiling, preserving the pattern's
// delimiter character and modifiers.
func SplitWithDelimiters(pattern, subject string, limit int) (*SplitResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.SplitWithDelimiters(subject, limit)
}

// Split slices subject into the segments between matches of the pattern.
func (p Pattern) Split(subject string, limit int) (*SplitResult, error) {
	return p.split(subject, limit, false)
}

// SplitWithDelimiters splits subject and retains the captured delimiters.
func (p Pattern) SplitWithDelimiters(subject string, limit int) (*SplitResult, error) {
	grouped := p
	if !wrappedInGroup(p.expression) {
		grouped = Pattern{
			expression: "(" + p.expression + ")",
			delimiter:  p.delimiter,
			modifiers:  p.modifiers,
		}
	}
	r, err := grouped.split(subject, limit, true)
	if err != nil {
		return nil, err
	}
	// The result reports the pattern as the caller wrote it, so feeding
	// Pattern() back into another split does not wrap twice.
	r.pattern = p.String()
	return r, nil
}

func (p Pattern) split(subject string, limit int, keepDelims bool) (*SplitResult, error) {
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	segments, err := e.Split(subject, limit, keepDelims)
	if err != nil {
		return nil, &SplitError{Pattern: p.String(), Err: err}
	}

	return &SplitResult{
		pattern:  p.String(),
		subject:  subject,
		segments: segments,
	}, nil
}

// wrappedInGroup reports whether expr is a single capturing group: it opens
// with a capturing paren whose matching close is the final character.
// Non-capturing and lookaround groups don't retain text, so they don't count;
// named-group spellings do.
func wrappedInGroup(expr string) bool {
	if len(expr) < 2 || expr[0] != '(' || expr[len(expr)-1] != ')' {
		return false
	}
	if len(expr) > 2 && expr[1] == '?' {
		rest := expr[2:]
		named := strings.HasPrefix(rest, "<") &&
			!strings.HasPrefix(rest, "<=") && !strings.HasPrefix(rest, "<!")
		if !named && !strings.HasPrefix(rest, "P<") && !strings.HasPrefix(rest, "'") {
			return false
		}
	}

	// The opening paren must close at the very end, or the wrap is illusory
	// (as in "(a)(b)"). Escapes and character classes hide parens.
	depth := 0
	inClass := false
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '\\':
			i++
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '(':
			if !inClass {
				depth++
			}
		case ')':
			if !inClass {
				depth--
				if depth == 0 {
					return i == len(expr)-1
				}
			}
		}
	}
	return false
}

// Results returns the segments in order. The slice is a copy; it is nil when
// the split produced no segments.
func (r *SplitResult) Results() []string {
	if len(r.segments) == 0 {
		return nil
	}
	out := make([]string, len(r.segments))
	copy(out, r.segments)
	return out
}

// Count returns the number of segments.
func (r *SplitResult) Count() int {
	return len(r.segments)
}

// IsEmpty reports whether the split produced no segments.
func (r *SplitResult) IsEmpty() bool {
	return len(r.segments) == 0
}

// IsNotEmpty reports whether the split produced at least one segment.
func (r *SplitResult) IsNotEmpty() bool {
	return len(r.segments) > 0
}

// First returns the first segment; ok is false when there are no segments.
func (r *SplitResult) First() (segment string, ok bool) {
	return r.Get(0)
}

// Last returns the last segment; ok is false when there are no segments.
func (r *SplitResult) Last() (segment string, ok bool) {
	return r.Get(len(r.segments) - 1)
}

// Get returns the i-th segment; ok is false when i is out of range.
func (r *SplitResult) Get(i int) (segment string, ok bool) {
	if i < 0 || i >= len(r.segments) {
		return "", false
	}
	return r.segments[i], true
}

// derive builds a sibling result sharing pattern and subject.
func (r *SplitResult) derive(segments []string) *SplitResult {
	return &SplitResult{pattern: r.pattern, subject: r.subject, segments: segments}
}

// Filter returns a result holding only the segments the predicate keeps, in
// their original order.
func (r *SplitResult) Filter(pred func(string) bool) *SplitResult {
	var kept []string
	for _, seg := range r.segments {
		if pred(seg) {
			kept = append(kept, seg)
		}
	}
	return r.derive(kept)
}

// Map returns a result with fn applied to every segment.
func (r *SplitResult) Map(fn func(string) string) *SplitResult {
	out := make([]string, len(r.segments))
	for i, seg := range r.segments {
		out[i] = fn(seg)
	}
	return r.derive(out)
}

// Each invokes fn on every segment in order and returns the receiver for
// chaining.
func (r *SplitResult) Each(fn func(string)) *SplitResult {
	for _, seg := range r.segments {
		fn(seg)
	}
	return r
}

// Join concatenates the segments with sep between them.
func (r *SplitResult) Join(sep string) string {
	return strings.Join(r.segments, sep)
}

// Take returns a result holding the first n segments.
func (r *SplitResult) Take(n int) *SplitResult {
	if n < 0 {
		n = 0
	}
	if n > len(r.segments) {
		n = len(r.segments)
	}
	return r.derive(r.segments[:n])
}

// Skip returns a result without the first n segments.
func (r *SplitResult) Skip(n int) *SplitResult {
	if n < 0 {
		n = 0
	}
	if n > len(r.segments) {
		n = len(r.segments)
	}
	return r.derive(r.segments[n:])
}

// Reverse returns a result with the segments in reverse order.
func (r *SplitResult) Reverse() *SplitResult {
	out := make([]string, len(r.segments))
	for i, seg := range r.segments {
		out[len(out)-1-i] = seg
	}
	return r.derive(out)
}

// Unique returns a result keeping only the first occurrence of each segment.
func (r *SplitResult) Unique() *SplitResult {
	seen := make(map[string]bool, len(r.segments))
	var out []string
	for _, seg := range r.segments {
		if !seen[seg] {
			seen[seg] = true
			out = append(out, seg)
		}
	}
	return r.derive(out)
}

// Pattern returns the complete pattern string as the caller supplied it,
// before any group wrapping by SplitWithDelimiters.
func (r *SplitResult) Pattern() string {
	return r.pattern
}

// Subject returns the subject that was split.
func (r *SplitResult) Subject() string {
	return r.subject
}
