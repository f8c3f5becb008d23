package rex

import (
	"errors"
	"strings"

	"github.com/coregx/rex/engine"
)

// ReplaceResult is the immutable outcome of a substitution: the rewritten
// subject (or subjects), the number of substitutions performed, and the
// metadata needed to chain further replacements.
//
// The result always mirrors the shape of its input: a single subject yields a
// single result string; a subject slice yields a result slice of the same
// length in the same order.
type ReplaceResult struct {
	patterns     []string
	replacements []string
	callback     bool
	subjects     []string
	results      []string
	single       bool
	count        int
}

// Replace substitutes replacement for matches of the complete pattern string
// in subject. $N and ${name} references in replacement expand to the
// corresponding captures. limit caps the number of substitutions; limit <= 0
// means all. Failures are *CompileError or *ReplaceError; no partial result
// accompanies an error.
func Replace(pattern, replacement, subject string, limit int) (*ReplaceResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.Replace(replacement, subject, limit)
}

// ReplaceFirst substitutes replacement for the first match only.
func ReplaceFirst(pattern, replacement, subject string) (*ReplaceResult, error) {
	return Replace(pattern, replacement, subject, 1)
}

// ReplaceFunc substitutes the return value of fn for each match, in match
// order. Each raw match is materialized into a MatchResult — unmatched groups
// present as null per the usual convention — before fn sees it. limit <= 0
// means all. A panic inside fn surfaces as a *ReplaceError.
func ReplaceFunc(pattern string, fn func(*MatchResult) string, subject string, limit int) (*ReplaceResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	return p.ReplaceFunc(fn, subject, limit)
}

// ReplaceSet applies each pattern with its replacement in sequence, every
// step rewriting the previous step's output. replacements holds either one
// replacement shared by all patterns or exactly one per pattern. The returned
// count totals the substitutions across all steps.
func ReplaceSet(patterns []string, replacements []string, subject string, limit int) (*ReplaceResult, error) {
	if len(replacements) != 1 && len(replacements) != len(patterns) {
		return nil, &ReplaceError{
			Pattern: strings.Join(patterns, " "),
			Err:     errors.New("need one replacement per pattern, or a single shared one"),
		}
	}

	current := subject
	total := 0
	for i, pattern := range patterns {
		replacement := replacements[0]
		if len(replacements) > 1 {
			replacement = replacements[i]
		}
		step, err := Replace(pattern, replacement, current, limit)
		if err != nil {
			return nil, err
		}
		current = step.Result()
		total += step.Count()
	}

	return &ReplaceResult{
		patterns:     append([]string(nil), patterns...),
		replacements: append([]string(nil), replacements...),
		subjects:     []string{subject},
		results:      []string{current},
		single:       true,
		count:        total,
	}, nil
}

// ReplaceEach applies the pattern and replacement to every subject
// independently. The result slice parallels subjects: same length, same
// order. The count totals the substitutions across all subjects.
func ReplaceEach(pattern, replacement string, subjects []string, limit int) (*ReplaceResult, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	results := make([]string, len(subjects))
	total := 0
	for i, subject := range subjects {
		out, n, err := e.Replace(subject, replacement, limit)
		if err != nil {
			return nil, &ReplaceError{Pattern: p.String(), Err: err}
		}
		results[i] = out
		total += n
	}

	return &ReplaceResult{
		patterns:     []string{p.String()},
		replacements: []string{replacement},
		subjects:     append([]string(nil), subjects...),
		results:      results,
		single:       false,
		count:        total,
	}, nil
}

// Replace substitutes replacement for matches of the pattern in subject.
func (p Pattern) Replace(replacement, subject string, limit int) (*ReplaceResult, error) {
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	out, n, err := e.Replace(subject, replacement, limit)
	if err != nil {
		return nil, &ReplaceError{Pattern: p.String(), Err: err}
	}

	return &ReplaceResult{
		patterns:     []string{p.String()},
		replacements: []string{replacement},
		subjects:     []string{subject},
		results:      []string{out},
		single:       true,
		count:        n,
	}, nil
}

// ReplaceFirst substitutes replacement for the first match only.
func (p Pattern) ReplaceFirst(replacement, subject string) (*ReplaceResult, error) {
	return p.Replace(replacement, subject, 1)
}

// ReplaceFunc substitutes the return value of fn for each match.
func (p Pattern) ReplaceFunc(fn func(*MatchResult) string, subject string, limit int) (*ReplaceResult, error) {
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	pattern := p.String()
	out, n, err := e.ReplaceFunc(subject, func(raw *engine.Match) string {
		view := &MatchResult{
			pattern: pattern,
			subject: subject,
			matched: true,
			set:     newGroupSet(raw, false),
		}
		return fn(view)
	}, limit)
	if err != nil {
		return nil, &ReplaceError{Pattern: pattern, Err: err}
	}

	return &ReplaceResult{
		patterns: []string{pattern},
		callback: true,
		subjects: []string{subject},
		results:  []string{out},
		single:   true,
		count:    n,
	}, nil
}

// Result returns the rewritten subject. When the input was a subject slice,
// the rewritten subjects are concatenated; use Results for the parallel
// slice.
func (r *ReplaceResult) Result() string {
	if r.single {
		return r.results[0]
	}
	return strings.Join(r.results, "")
}

// Results returns every rewritten subject, parallel to the input subjects.
func (r *ReplaceResult) Results() []string {
	out := make([]string, len(r.results))
	copy(out, r.results)
	return out
}

// String returns the same text as Result.
func (r *ReplaceResult) String() string {
	return r.Result()
}

// Count returns the number of substitutions performed.
func (r *ReplaceResult) Count() int {
	return r.count
}

// HasReplacements reports whether at least one substitution was performed.
func (r *ReplaceResult) HasReplacements() bool {
	return r.count > 0
}

// Unchanged reports whether no substitution was performed.
func (r *ReplaceResult) Unchanged() bool {
	return r.count == 0
}

// Equals reports whether the rewritten text equals expected.
func (r *ReplaceResult) Equals(expected string) bool {
	return r.Result() == expected
}

// Then chains another replacement, feeding this result's output in as the
// next subject. The chained result carries its own count. Subject shape is
// preserved: a slice input stays a slice through the chain.
func (r *ReplaceResult) Then(pattern, replacement string, limit int) (*ReplaceResult, error) {
	if r.single {
		return Replace(pattern, replacement, r.results[0], limit)
	}
	return ReplaceEach(pattern, replacement, r.results, limit)
}

// ThenFunc chains a callback replacement over this result's output.
// Unlike Then it collapses a slice result into its concatenated form first.
func (r *ReplaceResult) ThenFunc(pattern string, fn func(*MatchResult) string, limit int) (*ReplaceResult, error) {
	return ReplaceFunc(pattern, fn, r.Result(), limit)
}

// Pattern returns the first (usually only) pattern of the replacement.
func (r *ReplaceResult) Pattern() string {
	return r.patterns[0]
}

// Patterns returns every pattern the replacement applied, in order.
func (r *ReplaceResult) Patterns() []string {
	out := make([]string, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Subject returns the first (usually only) input subject.
func (r *ReplaceResult) Subject() string {
	return r.subjects[0]
}

// Subjects returns every input subject, in order.
func (r *ReplaceResult) Subjects() []string {
	out := make([]string, len(r.subjects))
	copy(out, r.subjects)
	return out
}

// Replacement returns the first (usually only) replacement text. For callback
// replacements it returns the empty string; IsCallback distinguishes the two.
func (r *ReplaceResult) Replacement() string {
	if len(r.replacements) == 0 {
		return ""
	}
	return r.replacements[0]
}

// Replacements returns every replacement text the operation applied, parallel
// to Patterns for a pattern set (or a single shared entry). Empty for callback
// replacements.
func (r *ReplaceResult) Replacements() []string {
	if len(r.replacements) == 0 {
		return nil
	}
	out := make([]string, len(r.replacements))
	copy(out, r.replacements)
	return out
}

// IsCallback reports whether the replacement was callback-driven.
func (r *ReplaceResult) IsCallback() bool {
	return r.callback
}
