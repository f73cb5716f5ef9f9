package recog

import (
	"context"

	"deepclean/internal/core/entity"
	"deepclean/internal/core/span"
)

// Resolve runs one field's text through the engine and normalizes the result:
// threshold filter, then overlap merge. The engine already receives the
// allow-list and floor, but its guarantees about honoring them (and about
// overlap-freedom) are not relied upon; the filter and merger always run.
//
// An engine failure yields a failed Outcome rather than an error so one
// field cannot abort a batch; callers decide how to surface it
func Resolve(
	ctx context.Context,
	eng Engine,
	text, language string,
	allowed []entity.Type,
	allowedSet entity.Set,
	minScore float64,
) span.Outcome {
	if text == "" {
		return span.Outcome{}
	}
	raw, err := eng.Analyze(ctx, text, language, allowed, minScore)
	if err != nil {
		return span.Outcome{Err: err}
	}
	return span.Outcome{Spans: span.Merge(span.Filter(raw, len(text), allowedSet, minScore))}
}
