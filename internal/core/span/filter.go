package span

import "deepclean/internal/core/entity"

// DefaultMinScore is the confidence floor applied when none is configured
const DefaultMinScore = 0.5

// Filter drops spans below the confidence floor, spans whose type is not in
// the allow-list, and malformed spans (inverted or out of bounds for a field
// of textLen bytes). Malformed spans are never fatal. The input is not mutated
func Filter(spans []Span, textLen int, allowed entity.Set, minScore float64) []Span {
	if len(spans) == 0 {
		return nil
	}
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.valid(textLen) {
			continue
		}
		if s.Score < minScore {
			continue
		}
		if !allowed.Has(s.Type) {
			continue
		}
		out = append(out, s)
	}
	return out
}
