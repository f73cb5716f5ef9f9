package span

import (
	"reflect"
	"testing"

	"deepclean/internal/core/entity"
)

func TestMerge_OverlapKeepsHigherScore(t *testing.T) {
	in := []Span{
		{Start: 0, End: 4, Type: entity.TypePerson, Score: 0.6},
		{Start: 2, End: 8, Type: entity.TypePerson, Score: 0.9},
	}

	out := Merge(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 merged span, got %+v", out)
	}
	got := out[0]
	if got.Start != 0 || got.End != 8 || got.Score != 0.9 {
		t.Fatalf("expected (0,8) score 0.9, got %+v", got)
	}
}

func TestMerge_MixedTypeOverlapTakesHigherScoredType(t *testing.T) {
	in := []Span{
		{Start: 0, End: 6, Type: entity.TypeLocation, Score: 0.55},
		{Start: 3, End: 9, Type: entity.TypePerson, Score: 0.85},
	}

	out := Merge(in)
	if len(out) != 1 || out[0].Type != entity.TypePerson || out[0].Score != 0.85 {
		t.Fatalf("expected a single PERSON span, got %+v", out)
	}
	if out[0].Start != 0 || out[0].End != 9 {
		t.Fatalf("expected (0,9), got %+v", out[0])
	}
}

func TestMerge_DisjointSpansPassThrough(t *testing.T) {
	in := []Span{
		{Start: 13, End: 25, Type: entity.TypePhoneNumber, Score: 0.88},
		{Start: 5, End: 9, Type: entity.TypePerson, Score: 0.91},
	}

	out := Merge(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 spans, got %+v", out)
	}
	// output is sorted by start regardless of input order
	if out[0].Start != 5 || out[1].Start != 13 {
		t.Fatalf("expected sorted disjoint spans, got %+v", out)
	}
}

func TestMerge_AdjacentSpansStaySeparate(t *testing.T) {
	in := []Span{
		{Start: 0, End: 4, Type: entity.TypePerson, Score: 0.9},
		{Start: 4, End: 8, Type: entity.TypePerson, Score: 0.9},
	}

	out := Merge(in)
	if len(out) != 2 {
		t.Fatalf("touching spans must not coalesce, got %+v", out)
	}
}

func TestMerge_ContainedSpanIsAbsorbed(t *testing.T) {
	in := []Span{
		{Start: 0, End: 10, Type: entity.TypeURL, Score: 0.7},
		{Start: 3, End: 6, Type: entity.TypePerson, Score: 0.95},
	}

	out := Merge(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 span, got %+v", out)
	}
	if out[0].Start != 0 || out[0].End != 10 {
		t.Fatalf("expected the outer range (0,10), got %+v", out[0])
	}
	if out[0].Type != entity.TypePerson || out[0].Score != 0.95 {
		t.Fatalf("inner higher score must win the type, got %+v", out[0])
	}
}

func TestMerge_ChainOfOverlapsCollapses(t *testing.T) {
	in := []Span{
		{Start: 0, End: 3, Type: entity.TypePerson, Score: 0.5},
		{Start: 2, End: 6, Type: entity.TypePerson, Score: 0.6},
		{Start: 5, End: 9, Type: entity.TypePerson, Score: 0.7},
	}

	out := Merge(in)
	if len(out) != 1 || out[0].Start != 0 || out[0].End != 9 {
		t.Fatalf("expected one span (0,9), got %+v", out)
	}
}

func TestMerge_OrderIndependent(t *testing.T) {
	a := []Span{
		{Start: 0, End: 4, Type: entity.TypePerson, Score: 0.6},
		{Start: 2, End: 8, Type: entity.TypePerson, Score: 0.9},
		{Start: 20, End: 24, Type: entity.TypeIPAddress, Score: 0.8},
	}
	b := []Span{a[2], a[1], a[0]}

	if !reflect.DeepEqual(Merge(a), Merge(b)) {
		t.Fatalf("merge result depends on input order:\n%+v\n%+v", Merge(a), Merge(b))
	}
}

func TestMerge_Empty(t *testing.T) {
	if out := Merge(nil); out != nil {
		t.Fatalf("expected nil, got %+v", out)
	}
}
