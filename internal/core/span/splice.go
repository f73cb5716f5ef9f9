package span

import "deepclean/internal/core/entity"

// Findings tallies replaced spans per entity type for one request
type Findings map[entity.Type]int

// Total returns the sum across all types
func (f Findings) Total() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

// Splice returns text with every merged span's substring replaced by its
// type's redaction literal. Each replacement bumps the per-type tally in f
// when f is non-nil.
//
// Spans must be non-overlapping and within bounds (run Filter and Merge
// first). Replacement walks the spans in descending start order: length
// changes from a replacement only shift text to its right, so offsets of
// spans not yet processed stay valid
func Splice(text string, merged []Span, f Findings) string {
	for i := len(merged) - 1; i >= 0; i-- {
		s := merged[i]
		text = text[:s.Start] + entity.Literal(s.Type) + text[s.End:]
		if f != nil {
			f[s.Type]++
		}
	}
	return text
}
