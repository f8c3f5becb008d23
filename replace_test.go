package rex

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReplaceCountAccuracy(t *testing.T) {
	r, err := Replace(`/\d+/`, "X", "a1 b2 c3", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "aX bX cX" {
		t.Errorf("Result() = %q, want %q", got, "aX bX cX")
	}
	if got := r.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestReplaceLimit(t *testing.T) {
	r, err := Replace(`/\d+/`, "X", "a1 b2 c3", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "aX bX c3" {
		t.Errorf("Result() = %q, want %q", got, "aX bX c3")
	}
	if got := r.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestReplaceFirst(t *testing.T) {
	r, err := ReplaceFirst(`/\d+/`, "X", "a1 b2")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "aX b2" {
		t.Errorf("Result() = %q, want %q", got, "aX b2")
	}
	if got := r.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestReplaceBackreferences(t *testing.T) {
	r, err := Replace(`/(\w+)@(\w+)/`, "$2 at $1", "user@example", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "example at user" {
		t.Errorf("Result() = %q, want %q", got, "example at user")
	}
}

func TestReplaceNoMatches(t *testing.T) {
	r, err := Replace(`/\d+/`, "X", "no digits", -1)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Unchanged() || r.HasReplacements() {
		t.Error("result of a no-match replace should be unchanged")
	}
	if got := r.Result(); got != "no digits" {
		t.Errorf("Result() = %q, want the untouched subject", got)
	}
	if got := r.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestReplaceFunc(t *testing.T) {
	r, err := ReplaceFunc(`/\d+/`, func(m *MatchResult) string {
		return "<" + m.Result() + ">"
	}, "a1 b22", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "a<1> b<22>" {
		t.Errorf("Result() = %q, want %q", got, "a<1> b<22>")
	}
	if got := r.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if !r.IsCallback() {
		t.Error("IsCallback() = false, want true")
	}
}

func TestReplaceFuncSeesNullGroups(t *testing.T) {
	// Each raw match is materialized before the callback runs, with the
	// usual unmatched-as-null semantics.
	r, err := ReplaceFunc(`/(\d+)?-(\d+)/`, func(m *MatchResult) string {
		if !m.GroupMatched(1) {
			return "?"
		}
		return m.GroupOr(1, "")
	}, "x -456 y 1-2", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "x ? y 1" {
		t.Errorf("Result() = %q, want %q", got, "x ? y 1")
	}
}

func TestReplaceFuncLimit(t *testing.T) {
	r, err := ReplaceFunc(`/\d/`, func(m *MatchResult) string {
		return "X"
	}, "1 2 3", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "X X 3" {
		t.Errorf("Result() = %q, want %q", got, "X X 3")
	}
	if got := r.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestReplaceFuncPanicBecomesError(t *testing.T) {
	_, err := ReplaceFunc(`/\d/`, func(m *MatchResult) string {
		panic("boom")
	}, "1", -1)
	if err == nil {
		t.Fatal("a panicking callback should surface as an error")
	}
	var re *ReplaceError
	if !errors.As(err, &re) {
		t.Errorf("error is %T, want *ReplaceError", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error should carry the panic value, got: %v", err)
	}
}

func TestChainedReplace(t *testing.T) {
	r, err := Replace(`/a/`, "A", "abc", -1)
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.Then(`/b/`, "B", -1)
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.Then(`/c/`, "C", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "ABC" {
		t.Errorf("chained Result() = %q, want %q", got, "ABC")
	}
}

func TestReplaceEachShape(t *testing.T) {
	subjects := []string{"a1", "plain", "b22 c3"}
	r, err := ReplaceEach(`/\d+/`, "#", subjects, -1)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"a#", "plain", "b# c#"}
	if diff := cmp.Diff(want, r.Results()); diff != "" {
		t.Errorf("Results() mismatch (-want +got):\n%s", diff)
	}
	if got := r.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if diff := cmp.Diff(subjects, r.Subjects()); diff != "" {
		t.Errorf("Subjects() mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceEachThenPreservesShape(t *testing.T) {
	r, err := ReplaceEach(`/a/`, "A", []string{"ab", "ba"}, -1)
	if err != nil {
		t.Fatal(err)
	}
	r, err = r.Then(`/b/`, "B", -1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"AB", "BA"}, r.Results()); diff != "" {
		t.Errorf("Results() mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceSet(t *testing.T) {
	r, err := ReplaceSet(
		[]string{`/a/`, `/b/`, `/c/`},
		[]string{"A", "B", "C"},
		"abc", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "ABC" {
		t.Errorf("Result() = %q, want %q", got, "ABC")
	}
	if got := r.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestReplaceSetSharedReplacement(t *testing.T) {
	r, err := ReplaceSet([]string{`/a/`, `/b/`}, []string{"_"}, "abc", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Result(); got != "__c" {
		t.Errorf("Result() = %q, want %q", got, "__c")
	}
}

func TestReplaceSetKeepsReplacements(t *testing.T) {
	// A pairwise set keeps its replacements distinguishable even when one
	// contains a space.
	r, err := ReplaceSet(
		[]string{`/a/`, `/b/`},
		[]string{"x y", "z"},
		"ab", -1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x y", "z"}, r.Replacements()); diff != "" {
		t.Errorf("Replacements() mismatch (-want +got):\n%s", diff)
	}
	if got := r.Replacement(); got != "x y" {
		t.Errorf("Replacement() = %q, want %q", got, "x y")
	}
	if got := r.Result(); got != "x yz" {
		t.Errorf("Result() = %q, want %q", got, "x yz")
	}
}

func TestReplaceSetMismatchedReplacements(t *testing.T) {
	_, err := ReplaceSet([]string{`/a/`, `/b/`}, []string{"A", "B", "C"}, "abc", -1)
	if err == nil {
		t.Fatal("mismatched replacement count should be an error")
	}
	var re *ReplaceError
	if !errors.As(err, &re) {
		t.Errorf("error is %T, want *ReplaceError", err)
	}
}

func TestReplaceMalformedPattern(t *testing.T) {
	_, err := Replace(`/[invalid/`, "X", "subject", -1)
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Errorf("error is %T, want *CompileError", err)
	}
}

func TestReplaceEquals(t *testing.T) {
	r, err := Replace(`/\d/`, "X", "a1", -1)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equals("aX") {
		t.Error("Equals should report true for the actual result")
	}
	if r.Equals("a1") {
		t.Error("Equals should report false for a different string")
	}
}

func TestReplaceMetadata(t *testing.T) {
	r, err := Replace(`/\d/`, "X", "a1", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Pattern(); got != `/\d/` {
		t.Errorf("Pattern() = %q, want %q", got, `/\d/`)
	}
	if got := r.Subject(); got != "a1" {
		t.Errorf("Subject() = %q, want %q", got, "a1")
	}
	if got := r.Replacement(); got != "X" {
		t.Errorf("Replacement() = %q, want %q", got, "X")
	}
}
