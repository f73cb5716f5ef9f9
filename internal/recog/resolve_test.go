package recog

import (
	"context"
	"errors"
	"testing"

	"deepclean/internal/core/entity"
	"deepclean/internal/core/span"
)

// fakeEngine returns canned spans or a canned error
type fakeEngine struct {
	spans []span.Span
	err   error
}

func (f fakeEngine) Analyze(context.Context, string, string, []entity.Type, float64) ([]span.Span, error) {
	return f.spans, f.err
}

func TestResolve_FiltersAndMergesEngineOutput(t *testing.T) {
	eng := fakeEngine{spans: []span.Span{
		// overlapping pair that must coalesce
		{Start: 0, End: 4, Type: entity.TypePerson, Score: 0.6},
		{Start: 2, End: 8, Type: entity.TypePerson, Score: 0.9},
		// below the floor even though the engine was told the floor
		{Start: 10, End: 14, Type: entity.TypePerson, Score: 0.2},
		// type outside the allow-list
		{Start: 16, End: 20, Type: entity.TypeURL, Score: 0.9},
	}}

	allowed := []entity.Type{entity.TypePerson}
	oc := Resolve(context.Background(), eng, "abcdefghijklmnopqrstuv", "en", allowed, entity.NewSet(allowed), 0.5)
	if oc.Failed() {
		t.Fatalf("unexpected failure: %v", oc.Err)
	}
	if len(oc.Spans) != 1 {
		t.Fatalf("expected 1 span, got %+v", oc.Spans)
	}
	if s := oc.Spans[0]; s.Start != 0 || s.End != 8 || s.Score != 0.9 {
		t.Fatalf("expected merged (0,8) at 0.9, got %+v", s)
	}
}

func TestResolve_EngineErrorYieldsFailedOutcome(t *testing.T) {
	eng := fakeEngine{err: errors.New("model crashed")}
	oc := Resolve(context.Background(), eng, "text", "en", nil, entity.NewSet(nil), 0.5)
	if !oc.Failed() {
		t.Fatal("expected a failed outcome")
	}
	if len(oc.Spans) != 0 {
		t.Fatalf("failed outcome must carry no spans, got %+v", oc.Spans)
	}
}

func TestResolve_EmptyTextNeverCallsEngine(t *testing.T) {
	eng := fakeEngine{err: errors.New("must not be called")}
	oc := Resolve(context.Background(), eng, "", "en", nil, entity.NewSet(nil), 0.5)
	if oc.Failed() || oc.Spans != nil {
		t.Fatalf("expected clean empty outcome, got %+v", oc)
	}
}
