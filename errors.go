package rex

import "strconv"

// displayPattern truncates pattern text for inclusion in error messages.
func displayPattern(pattern string) string {
	const max = 40
	runes := []rune(pattern)
	if len(runes) <= max {
		return pattern
	}
	return string(runes[:max]) + "..."
}

// CompileError reports a pattern that cannot be used: either the delimited
// string form is malformed, or the engine rejected the expression. Detail
// carries the engine diagnostic when one exists.
type CompileError struct {
	Pattern string
	Detail  string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	msg := "rex: cannot compile pattern `" + displayPattern(e.Pattern) + "`"
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the engine's error, when one exists.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// MatchError reports a hard engine failure during a match operation.
// "No match found" is a normal outcome, never a MatchError.
type MatchError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return "rex: match against `" + displayPattern(e.Pattern) + "` failed: " + e.Err.Error()
}

// Unwrap returns the underlying engine error.
func (e *MatchError) Unwrap() error {
	return e.Err
}

// ReplaceError reports a hard engine failure during a replace operation,
// including a panic surfaced from inside a replacement callback.
type ReplaceError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *ReplaceError) Error() string {
	return "rex: replace with `" + displayPattern(e.Pattern) + "` failed: " + e.Err.Error()
}

// Unwrap returns the underlying engine error.
func (e *ReplaceError) Unwrap() error {
	return e.Err
}

// SplitError reports a hard engine failure during a split operation.
type SplitError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *SplitError) Error() string {
	return "rex: split by `" + displayPattern(e.Pattern) + "` failed: " + e.Err.Error()
}

// Unwrap returns the underlying engine error.
func (e *SplitError) Unwrap() error {
	return e.Err
}

// GroupNotFoundError reports a request for a capture group the pattern never
// defines. It is returned only by the non-defaulting group accessors; a group
// that exists but did not participate in a match is not an error.
type GroupNotFoundError struct {
	// Index is the requested slot for positional lookups.
	Index int
	// Name is the requested name for named lookups; empty for positional.
	Name string
}

// Error implements the error interface.
func (e *GroupNotFoundError) Error() string {
	if e.Name != "" {
		return "rex: no capture group named " + strconv.Quote(e.Name)
	}
	return "rex: no capture group " + strconv.Itoa(e.Index)
}
