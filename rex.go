// Package rex normalizes raw regex engine output into immutable, typed
// result objects with ergonomic accessors.
//
// rex is a façade over a PCRE-style regex engine. It does not match text
// itself; it shapes what the engine reports — arrays of captured text,
// optional offsets, named and indexed groups — into consistent, queryable
// values:
//   - Pattern: expression + delimiter + modifier set, round-tripping
//     losslessly through its single string form
//   - MatchResult / MatchAllResult: captured groups keyed by slot and by
//     name, with unmatched groups present as null rather than absent
//   - ReplaceResult: substitution output with an accurate count and
//     chainable follow-up replacements
//   - SplitResult: segments with empty-segment suppression and optional
//     delimiter retention
//
// Basic usage:
//
//	m, err := rex.Match(`/(?<year>\d{4})-(?<month>\d{2})/`, "released 2024-05")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m.Matched() {
//	    year, _ := m.NamedGroup("year")
//	    fmt.Println(year) // "2024"
//	}
//
// Patterns are complete pattern strings — delimiter, expression, delimiter,
// modifiers, as in "/\d+/i" — or Pattern values built with NewPattern and the
// fluent modifier API:
//
//	p := rex.NewPattern(`\d+`).WithModifier(rex.CaseInsensitive)
//	all, err := p.MatchAll("a1 b2 c3")
//
// Every result object is immutable: the higher-order operations (Filter, Map,
// Take, Capture, ...) return fresh instances, so patterns and results may be
// shared freely between goroutines. "No match" is always a normal outcome,
// never an error; errors are reserved for malformed patterns and hard engine
// failures, one typed error kind per operation.
package rex
