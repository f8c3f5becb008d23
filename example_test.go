package rex_test

import (
	"fmt"

	"github.com/coregx/rex"
)

// ExampleMatch demonstrates matching a complete pattern string.
func ExampleMatch() {
	m, err := rex.Match(`/\d+/`, "age: 42")
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Result())
	// Output: 42
}

// ExampleMatch_namedGroups demonstrates named group access.
func ExampleMatch_namedGroups() {
	m, _ := rex.Match(`/(?<year>\d{4})-(?<month>\d{2})/`, "released 2024-05")
	year, _ := m.NamedGroup("year")
	month, _ := m.NamedGroup("month")
	fmt.Println(year, month)
	// Output: 2024 05
}

// ExampleMatchWithOffsets demonstrates offset capture.
func ExampleMatchWithOffsets() {
	m, _ := rex.MatchWithOffsets(`/\d+/`, "abc 123 def")
	pos, _ := m.Position(0)
	fmt.Printf("start=%d length=%d end=%d\n", pos.Start, pos.Length, pos.End())
	// Output: start=4 length=3 end=7
}

// ExampleNewPattern demonstrates the fluent modifier API.
func ExampleNewPattern() {
	p := rex.NewPattern(`hello`).WithModifier(rex.CaseInsensitive)
	fmt.Println(p)

	ok, _ := p.Test("say HELLO")
	fmt.Println(ok)
	// Output:
	// /hello/i
	// true
}

// ExampleParsePattern demonstrates the pattern round-trip.
func ExampleParsePattern() {
	p, err := rex.ParsePattern(`/\d+/im`)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Expression())
	fmt.Println(p.Modifiers())
	// Output:
	// \d+
	// im
}

// ExampleMatchAll demonstrates collecting every match.
func ExampleMatchAll() {
	all, _ := rex.MatchAll(`/\d+/`, "1 22 333")
	fmt.Println(all.Count())
	fmt.Println(all.Results())
	// Output:
	// 3
	// [1 22 333]
}

// ExampleMatchAllResult_Filter demonstrates higher-order traversal.
func ExampleMatchAllResult_Filter() {
	all, _ := rex.MatchAll(`/\d+/`, "1 22 333 4444")
	long := all.Filter(func(m *rex.MatchResult) bool {
		return len(m.Result()) > 2
	})
	fmt.Println(long.Results())
	// Output: [333 4444]
}

// ExampleReplace demonstrates substitution with a count.
func ExampleReplace() {
	r, _ := rex.Replace(`/\d+/`, "X", "a1 b2 c3", -1)
	fmt.Println(r.Result(), r.Count())
	// Output: aX bX cX 3
}

// ExampleReplaceFunc demonstrates callback-driven replacement.
func ExampleReplaceFunc() {
	r, _ := rex.ReplaceFunc(`/\d+/`, func(m *rex.MatchResult) string {
		return "<" + m.Result() + ">"
	}, "a1 b22", -1)
	fmt.Println(r.Result())
	// Output: a<1> b<22>
}

// ExampleReplaceResult_Then demonstrates chained replacement.
func ExampleReplaceResult_Then() {
	r, _ := rex.Replace(`/a/`, "A", "abc", -1)
	r, _ = r.Then(`/b/`, "B", -1)
	r, _ = r.Then(`/c/`, "C", -1)
	fmt.Println(r.Result())
	// Output: ABC
}

// ExampleSplit demonstrates splitting with empty-segment suppression.
func ExampleSplit() {
	r, _ := rex.Split(`/,/`, "a,,b", -1)
	fmt.Println(r.Results())
	// Output: [a b]
}

// ExampleSplitWithDelimiters demonstrates delimiter retention.
func ExampleSplitWithDelimiters() {
	r, _ := rex.SplitWithDelimiters(`/(,)/`, "a,b,c", -1)
	fmt.Println(r.Results())
	// Output: [a , b , c]
}

// ExampleAnyOf demonstrates building a literal alternation.
func ExampleAnyOf() {
	p := rex.AnyOf("cat", "dog")
	fmt.Println(p)

	m, _ := p.Match("hot dog stand")
	fmt.Println(m.Result())
	// Output:
	// /cat|dog/
	// dog
}

// ExampleScanLiterals demonstrates the literal fast path.
func ExampleScanLiterals() {
	all, _ := rex.ScanLiterals("the cat sat on the mat", "cat", "mat")
	fmt.Println(all.Results())
	// Output: [cat mat]
}
