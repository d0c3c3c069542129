package rsml

import "sort"

// ReproducesInput checks the byte-coverage invariant: for every token
// sequence the lexer produces, concatenating the byte ranges the tokens
// cover — plus whatever whitespace or unrecognised bytes were skipped
// between them — reproduces the input exactly. Gaps between consecutive
// token ranges are, by construction, exactly that skipped material, so the
// check is just "once sorted by start, ranges do not overlap and none runs
// past the end of source."
func ReproducesInput(source string, toks []Token) bool {
	ranges := make([]Token, len(toks))
	copy(ranges, toks)
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Range.Loc.Start < ranges[j].Range.Loc.Start
	})

	prevEnd := int32(0)
	for _, t := range ranges {
		if t.Range.Loc.Start < prevEnd {
			return false // overlapping ranges
		}
		if t.Range.End() > int32(len(source)) {
			return false // runs past the source buffer
		}
		prevEnd = t.Range.End()
	}
	return true
}
