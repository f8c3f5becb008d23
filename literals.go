package rex

import (
	"github.com/coregx/ahocorasick"
)

// ScanLiterals collects every non-overlapping occurrence of the given
// literal strings in subject, in subject order, as a MatchAllResult. It is
// the fast path for AnyOf-shaped patterns: the literal set is compiled into
// an Aho-Corasick automaton and scanned in one pass, with no regex engine
// involvement. For non-overlapping literal sets the results equal
// MatchAll(AnyOf(literals...).String(), subject).
//
// Automaton construction failures surface as a *MatchError.
func ScanLiterals(subject string, literals ...string) (*MatchAllResult, error) {
	pattern := AnyOf(literals...).String()

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &MatchError{Pattern: pattern, Err: err}
	}

	haystack := []byte(subject)
	result := &MatchAllResult{pattern: pattern, subject: subject}

	at := 0
	for at <= len(haystack) {
		m := auto.Find(haystack, at)
		if m == nil {
			break
		}
		text := string(haystack[m.Start:m.End])
		result.sets = append(result.sets, groupSet{
			groups: []Group{{Text: text, Matched: true, Position: InvalidPosition()}},
		})
		if m.End > at {
			at = m.End
		} else {
			at++
		}
	}
	return result, nil
}
