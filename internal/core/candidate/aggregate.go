// Package candidate aggregates merged spans across a batch into deduplicated,
// ranked review candidates. Nothing here mutates row text
package candidate

import (
	"sort"

	"deepclean/internal/core/entity"
	"deepclean/internal/core/span"
)

// MaxLocations caps the per-candidate evidence list. Counts keep
// accumulating past the cap; only the spatial evidence stops growing, so a
// batch dominated by one common merchant name stays bounded in memory
const MaxLocations = 50

// Location pins one occurrence to a row and field
type Location struct {
	Row   int    `json:"row"`
	Field string `json:"field"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Candidate is every occurrence of one exact matched text / entity type pair.
// Matching is literal: case or whitespace variants of the same identifier are
// tracked as distinct candidates
type Candidate struct {
	Text       string      `json:"text"`
	Type       entity.Type `json:"entity_type"`
	Confidence float64     `json:"confidence"`
	Count      int         `json:"count"`
	Locations  []Location  `json:"locations"`
}

type key struct {
	text string
	typ  entity.Type
}

// Aggregator collects spans across rows and fields of one request
type Aggregator struct {
	byKey map[key]*Candidate
	order []key // first-seen order, the stable-sort baseline
}

// NewAggregator returns an empty Aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{byKey: make(map[key]*Candidate)}
}

// Add records one merged span found in text at the given row and field.
// The matched substring is taken from text using the span's offsets
func (a *Aggregator) Add(row int, field, text string, s span.Span) {
	k := key{text: text[s.Start:s.End], typ: s.Type}
	c, ok := a.byKey[k]
	if !ok {
		c = &Candidate{Text: k.text, Type: k.typ, Confidence: s.Score}
		a.byKey[k] = c
		a.order = append(a.order, k)
	}
	c.Count++
	if s.Score > c.Confidence {
		c.Confidence = s.Score
	}
	if len(c.Locations) < MaxLocations {
		c.Locations = append(c.Locations, Location{
			Row:   row,
			Field: field,
			Start: s.Start,
			End:   s.End,
		})
	}
}

// Total returns the number of spans added so far
func (a *Aggregator) Total() int {
	n := 0
	for _, c := range a.byKey {
		n += c.Count
	}
	return n
}

// Ranked returns candidates ordered by confidence descending then count
// descending; ties keep first-seen order so identical input always produces
// identical output
func (a *Aggregator) Ranked() []Candidate {
	out := make([]Candidate, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, *a.byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Count > out[j].Count
	})
	return out
}
