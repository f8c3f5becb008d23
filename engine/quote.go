package engine

// metachars are the characters with special meaning inside a pattern.
const metachars = `\.+*?()|[]{}^$#-`

// Quote escapes every regex metacharacter in text so the result matches text
// literally. When delim is non-zero, occurrences of that pattern delimiter
// are escaped as well, making the result safe to embed in a delimited
// pattern string.
func Quote(text string, delim rune) string {
	special := func(r rune) bool {
		if delim != 0 && r == delim {
			return true
		}
		for _, m := range metachars {
			if r == m {
				return true
			}
		}
		return false
	}

	n := 0
	for _, r := range text {
		if special(r) {
			n++
		}
	}
	if n == 0 {
		return text
	}

	buf := make([]rune, 0, len(text)+n)
	for _, r := range text {
		if special(r) {
			buf = append(buf, '\\')
		}
		buf = append(buf, r)
	}
	return string(buf)
}
