package span

import "sort"

// Merge collapses overlapping spans into maximal non-overlapping ranges.
// The engine's per-call overlap guarantees are not relied upon; this always
// runs before splicing or aggregation so results stay deterministic no matter
// what order the engine emitted matches in.
//
// Spans are sorted by start ascending, end descending (longest first), then
// walked once: a span starting inside the open range extends it
// (end = max of both ends) and the open range keeps the type and score of
// whichever constituent scored higher; anything else opens a new range
func Merge(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	out := make([]Span, 0, len(sorted))
	open := sorted[0]
	for _, s := range sorted[1:] {
		if s.Start < open.End {
			if s.End > open.End {
				open.End = s.End
			}
			if s.Score > open.Score {
				open.Type = s.Type
				open.Score = s.Score
			}
			continue
		}
		out = append(out, open)
		open = s
	}
	return append(out, open)
}
