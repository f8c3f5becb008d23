package rex

import (
	"strings"

	"github.com/coregx/rex/engine"
)

// Filter returns the subjects the complete pattern string matches, in their
// original order.
func Filter(pattern string, subjects []string) ([]string, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	var kept []string
	for _, subject := range subjects {
		ok, err := e.IsMatch(subject)
		if err != nil {
			return nil, &MatchError{Pattern: p.String(), Err: err}
		}
		if ok {
			kept = append(kept, subject)
		}
	}
	return kept, nil
}

// Reject returns the subjects the pattern does not match, in their original
// order.
func Reject(pattern string, subjects []string) ([]string, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	var kept []string
	for _, subject := range subjects {
		ok, err := e.IsMatch(subject)
		if err != nil {
			return nil, &MatchError{Pattern: p.String(), Err: err}
		}
		if !ok {
			kept = append(kept, subject)
		}
	}
	return kept, nil
}

// FirstMatching returns the first subject the pattern matches; ok is false
// when no subject matches.
func FirstMatching(pattern string, subjects []string) (subject string, ok bool, err error) {
	p, perr := parse(pattern)
	if perr != nil {
		return "", false, perr
	}
	e, cerr := p.compile()
	if cerr != nil {
		return "", false, cerr
	}

	for _, s := range subjects {
		matched, merr := e.IsMatch(s)
		if merr != nil {
			return "", false, &MatchError{Pattern: p.String(), Err: merr}
		}
		if matched {
			return s, true, nil
		}
	}
	return "", false, nil
}

// Extract returns the first-match text from every subject the pattern
// matches, skipping subjects with no match. It is the projecting form of
// Filter.
func Extract(pattern string, subjects []string) ([]string, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	var out []string
	for _, subject := range subjects {
		raw, merr := e.MatchFirst(subject, 0)
		if merr != nil {
			return nil, &MatchError{Pattern: p.String(), Err: merr}
		}
		if raw != nil {
			out = append(out, raw.Groups[0].Text)
		}
	}
	return out, nil
}

// Pluck runs the pattern once against every subject and collects the value of
// the named group, one Group per subject in order. A subject with no match,
// or whose match lacks the group, contributes an unmatched Group.
func Pluck(pattern, name string, subjects []string) ([]Group, error) {
	p, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	e, err := p.compile()
	if err != nil {
		return nil, err
	}

	out := make([]Group, len(subjects))
	for i, subject := range subjects {
		out[i] = Group{Position: InvalidPosition()}
		raw, merr := e.MatchFirst(subject, 0)
		if merr != nil {
			return nil, &MatchError{Pattern: p.String(), Err: merr}
		}
		if raw == nil {
			continue
		}
		set := newGroupSet(raw, false)
		if j, ok := set.names[name]; ok {
			out[i] = set.groups[j]
		}
	}
	return out, nil
}

// CountIn returns the number of non-overlapping matches of the pattern in
// subject.
func CountIn(pattern, subject string) (int, error) {
	all, err := MatchAll(pattern, subject)
	if err != nil {
		return 0, err
	}
	return all.Count(), nil
}

// AnyOf builds a Pattern matching any of the given literal strings, escaping
// every regex metacharacter and the default pattern delimiter. The
// alternation preserves the argument order.
func AnyOf(literals ...string) Pattern {
	quoted := make([]string, len(literals))
	for i, lit := range literals {
		quoted[i] = engine.Quote(lit, DefaultDelimiter)
	}
	return NewPattern(strings.Join(quoted, "|"))
}

// Quote escapes every regex metacharacter in text so the result matches text
// literally.
func Quote(text string) string {
	return engine.Quote(text, 0)
}

// QuoteWithDelimiter additionally escapes the given pattern delimiter, making
// the result safe to embed in a delimited pattern string.
func QuoteWithDelimiter(text string, delim rune) string {
	return engine.Quote(text, delim)
}
