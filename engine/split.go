package engine

// Split slices subject into the segments between matches of the pattern.
//
// The limit determines the number of segments produced before empty-segment
// suppression:
//
//	limit > 0: at most limit segments; the last segment is the unsplit remainder.
//	limit == 0: no segments.
//	limit < 0: all segments.
//
// Zero-length segments are always dropped, whether they come from adjacent
// delimiters, a delimiter at either end of the subject, or an unmatched
// optional delimiter capture.
//
// When keepDelims is set, the text of every participating capture group of
// each delimiter match is inserted into the sequence between the segments it
// separates. Only captured delimiter text can be retained; wrapping a bare
// expression in a capturing group is the caller's responsibility.
func (e *Engine) Split(subject string, limit int, keepDelims bool) ([]string, error) {
	if limit == 0 {
		return nil, nil
	}

	matches, err := e.MatchAll(subject, 0)
	if err != nil {
		return nil, err
	}

	runes := []rune(subject)
	var parts []string
	prev := 0
	segments := 0

	for _, m := range matches {
		if limit > 0 && segments >= limit-1 {
			break
		}
		full := m.Groups[0]
		parts = append(parts, string(runes[prev:full.Index]))
		if keepDelims {
			for _, g := range m.Groups[1:] {
				if g.Matched {
					parts = append(parts, g.Text)
				}
			}
		}
		prev = full.Index + full.Length
		segments++
	}
	parts = append(parts, string(runes[prev:]))

	// Drop empties in place; order is preserved.
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
