package engine

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Replace substitutes replacement for matches of the pattern in subject.
// $N and ${name} references in replacement expand to the corresponding
// captures. limit caps the number of substitutions; limit <= 0 means all.
// Returns the rewritten subject and the substitution count.
func (e *Engine) Replace(subject, replacement string, limit int) (string, int, error) {
	if limit == 0 {
		limit = -1
	}

	// The engine does not report how many substitutions it made, so count
	// the matches up front with the same limit.
	count, err := e.countMatches(subject, limit)
	if err != nil {
		return "", 0, err
	}
	if count == 0 {
		return subject, 0, nil
	}

	out, err := e.re.Replace(subject, replacement, -1, limit)
	if err != nil {
		return "", 0, err
	}
	return out, count, nil
}

// ReplaceFunc substitutes the evaluator's return value for each match, in
// match order. limit caps the number of substitutions; limit <= 0 means all.
//
// A panic inside the evaluator is recovered and returned as an error: every
// other failure on the replace path is an ordinary error, and a caller
// callback must not be able to bypass that contract.
func (e *Engine) ReplaceFunc(subject string, eval func(*Match) string, limit int) (out string, count int, err error) {
	if limit == 0 {
		limit = -1
	}

	defer func() {
		if r := recover(); r != nil {
			out, count = "", 0
			err = fmt.Errorf("replacement callback panicked: %v", r)
		}
	}()

	out, err = e.re.ReplaceFunc(subject, func(m regexp2.Match) string {
		count++
		return eval(convertMatch(&m))
	}, -1, limit)
	if err != nil {
		return "", 0, err
	}
	return out, count, nil
}
