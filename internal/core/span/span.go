// Package span implements the span-to-text pipeline: filtering raw engine
// matches, merging overlaps, and splicing redaction literals into field text.
// Offsets are byte offsets into the field the span was produced from
package span

import "deepclean/internal/core/entity"

// Span is one engine match over a field's text, [Start,End)
type Span struct {
	Start int         `json:"start"`
	End   int         `json:"end"`
	Type  entity.Type `json:"entity_type"`
	Score float64     `json:"score"`
}

// Len returns the covered byte length
func (s Span) Len() int { return s.End - s.Start }

// valid reports whether the span is well formed for text of length n
func (s Span) valid(n int) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= n
}

// Outcome is the per-field analysis result. A failed field carries zero
// spans plus the reason; the batch keeps going either way
type Outcome struct {
	Spans []Span
	Err   error
}

// Failed reports whether analysis failed for this field
func (o Outcome) Failed() bool { return o.Err != nil }
