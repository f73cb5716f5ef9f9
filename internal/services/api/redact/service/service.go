// Package service implements the redaction workflow
package service

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"deepclean/internal/core/entity"
	"deepclean/internal/core/span"
	"deepclean/internal/platform/config"
	"deepclean/internal/platform/logger"
	"deepclean/internal/recog"
	"deepclean/internal/services/api/redact/domain"
	txndom "deepclean/internal/services/txn/domain"
)

// Config for the redact service
type Config struct {
	// Workers bounds concurrent engine calls; rows are otherwise independent
	Workers int
	// MinScore is the confidence floor, fixed at startup
	MinScore float64
	// Language is the default detection language tag
	Language string
}

// FromConfig reads service settings from a config view
func FromConfig(cfg config.Conf) Config {
	return Config{
		Workers:  cfg.MayInt("WORKERS", 4),
		MinScore: cfg.MayFloat64("MIN_SCORE", span.DefaultMinScore),
		Language: cfg.MayString("LANGUAGE", "en"),
	}
}

// Service defines the service contract for redaction
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	eng recog.Engine
	cfg Config
	log *logger.Logger
}

// New creates a new redact service
func New(eng recog.Engine, cfg Config) *Svc {
	if eng == nil {
		panic("redact.Service requires a non nil Engine")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = span.DefaultMinScore
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	return &Svc{eng: eng, cfg: cfg, log: logger.Named("redact")}
}

// Redact analyzes every row's scannable fields and splices redaction
// literals over confirmed spans. One field's engine failure leaves that
// field as-is and the batch continues; cancellation discards everything
func (s *Svc) Redact(ctx context.Context, in domain.RedactInput) (domain.RedactResult, error) {
	batch := uuid.NewString()
	lang := ResolveLanguage(in.Language, s.cfg.Language)
	allowed := entity.Resolve(in.Entities)
	allowedSet := entity.NewSet(allowed)

	type rowOut struct {
		row      txndom.Row
		findings span.Findings
	}
	outs := make([]rowOut, len(in.Transactions))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i := range in.Transactions {
		i := i // per-iteration copy; required while go.mod targets go < 1.22
		g.Go(func() error {
			row := in.Transactions[i] // copy; the request row stays untouched
			f := span.Findings{}
			for _, fld := range row.Fields() {
				oc := recog.Resolve(gctx, s.eng, fld.Text, lang, allowed, allowedSet, s.cfg.MinScore)
				if oc.Failed() {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					failed.Add(1)
					s.log.Warn().
						Str("batch_id", batch).
						Int("row", i).
						Str("field", fld.Name).
						Err(oc.Err).
						Msg("field analysis failed, passing through unredacted")
					continue
				}
				clean := span.Splice(fld.Text, oc.Spans, f)
				switch fld.Name {
				case txndom.FieldMerchant:
					row.Merchant = clean
				case txndom.FieldDescription:
					row.Description = clean
				}
			}
			outs[i] = rowOut{row: row, findings: f}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// all or nothing at the request boundary, partial state is dropped
		return domain.RedactResult{}, err
	}

	findings := span.Findings{}
	rows := make([]txndom.Row, 0, len(outs))
	for _, o := range outs {
		rows = append(rows, o.row)
		for t, n := range o.findings {
			findings[t] += n
		}
	}

	s.log.Info().
		Str("batch_id", batch).
		Int("rows", len(rows)).
		Int("total_found", findings.Total()).
		Int64("failed_fields", failed.Load()).
		Msg("redaction done")

	return domain.RedactResult{
		Transactions: rows,
		Findings:     findings,
		TotalFound:   findings.Total(),
		FailedFields: int(failed.Load()),
	}, nil
}

// ResolveLanguage picks the request override when it parses as a BCP 47 tag,
// otherwise the configured default
func ResolveLanguage(requested, fallback string) string {
	if requested == "" {
		return fallback
	}
	if _, err := language.Parse(requested); err != nil {
		return fallback
	}
	return requested
}
