package recog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"strings"
	"time"

	"deepclean/internal/core/entity"
	"deepclean/internal/core/span"
	"deepclean/internal/platform/config"
	perr "deepclean/internal/platform/errors"
	"deepclean/internal/platform/logger"
)

// Config for the analyzer client, read from RECOG_* env
type Config struct {
	// BaseURL of the analyzer sidecar, e.g. http://analyzer:3000
	BaseURL string
	// Timeout bounds one Analyze round trip
	Timeout time.Duration
}

// FromConfig reads client settings from a config view
func FromConfig(cfg config.Conf) Config {
	return Config{
		BaseURL: cfg.MustString("URL"),
		Timeout: cfg.MayDuration("TIMEOUT", 10*time.Second),
	}
}

// Client is an Engine backed by the analyzer's REST API
type Client struct {
	base string
	hc   *stdhttp.Client
	log  *logger.Logger
}

var _ Engine = (*Client)(nil)
var _ Prober = (*Client)(nil)

// NewClient builds a Client. The engine is probed separately via Ready;
// construction never dials
func NewClient(cfg Config) *Client {
	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		hc:   &stdhttp.Client{Timeout: cfg.Timeout},
		log:  logger.Named("recog"),
	}
}

// analyzeRequest is the analyzer wire input
type analyzeRequest struct {
	Text           string   `json:"text"`
	Language       string   `json:"language"`
	Entities       []string `json:"entities,omitempty"`
	ScoreThreshold float64  `json:"score_threshold"`
}

// analyzeResult is one analyzer wire match
type analyzeResult struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

// Analyze posts text to the analyzer and decodes the matches. Empty text
// short-circuits to no spans without a network call
func (c *Client) Analyze(
	ctx context.Context,
	text, language string,
	allowed []entity.Type,
	minScore float64,
) ([]span.Span, error) {
	if text == "" {
		return nil, nil
	}

	names := make([]string, 0, len(allowed))
	for _, t := range allowed {
		names = append(names, string(t))
	}
	body, err := json.Marshal(analyzeRequest{
		Text:           text,
		Language:       language,
		Entities:       names,
		ScoreThreshold: minScore,
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "encode analyze request")
	}

	req, err := stdhttp.NewRequestWithContext(ctx, stdhttp.MethodPost, c.base+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "build analyze request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "analyzer unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != stdhttp.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, perr.Unavailablef("analyzer returned %d: %s", resp.StatusCode, string(snippet))
	}

	var results []analyzeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "decode analyze response")
	}

	// the analyzer reports codepoint offsets; the span pipeline works in
	// byte offsets, so remap before anything downstream touches them
	offs := byteOffsets(text)
	out := make([]span.Span, 0, len(results))
	for _, r := range results {
		if r.Start < 0 || r.Start > r.End || r.End >= len(offs) {
			continue
		}
		out = append(out, span.Span{
			Start: offs[r.Start],
			End:   offs[r.End],
			Type:  entity.Type(r.EntityType),
			Score: r.Score,
		})
	}
	return out, nil
}

// byteOffsets returns the byte offset of each rune index in text, with a
// final entry at len(text) so a span ending on the last rune maps cleanly
func byteOffsets(text string) []int {
	offs := make([]int, 0, len(text)+1)
	for i := range text {
		offs = append(offs, i)
	}
	return append(offs, len(text))
}

// Ready probes the analyzer health endpoint. Used once at startup (failure
// is fatal there) and by the readiness endpoint afterwards
func (c *Client) Ready(ctx context.Context) error {
	req, err := stdhttp.NewRequestWithContext(ctx, stdhttp.MethodGet, c.base+"/health", nil)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "build health request")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "analyzer unreachable")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != stdhttp.StatusOK {
		return perr.Unavailablef("analyzer health returned %d", resp.StatusCode)
	}
	return nil
}
