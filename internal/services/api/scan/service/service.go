// Package service implements the scan workflow
package service

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"deepclean/internal/core/candidate"
	"deepclean/internal/core/entity"
	"deepclean/internal/core/span"
	"deepclean/internal/platform/config"
	"deepclean/internal/platform/logger"
	"deepclean/internal/recog"
	redactsvc "deepclean/internal/services/api/redact/service"
	"deepclean/internal/services/api/scan/domain"
)

// Config for the scan service
type Config struct {
	Workers  int
	MinScore float64
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

// Service defines the service contract for scanning
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	eng recog.Engine
	cfg Config
	log *logger.Logger
}

// New creates a new scan service
func New(eng recog.Engine, cfg Config) *Svc {
	if eng == nil {
		panic("scan.Service requires a non nil Engine")
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
	return &Svc{eng: eng, cfg: cfg, log: logger.Named("scan")}
}

// Scan analyzes every row's scannable fields and aggregates merged spans
// into deduplicated, ranked candidates. Analysis fans out across workers;
// aggregation is a sequential reduce in row order so first-seen ordering
// stays deterministic
func (s *Svc) Scan(ctx context.Context, in domain.ScanInput) (domain.ScanResult, error) {
	batch := uuid.NewString()
	lang := redactsvc.ResolveLanguage(in.Language, s.cfg.Language)
	allowed := entity.Resolve(in.Entities)
	allowedSet := entity.NewSet(allowed)

	// one outcome slot per field per row, filled in parallel
	outs := make([][]span.Outcome, len(in.Transactions))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i := range in.Transactions {
		i := i // per-iteration copy; required while go.mod targets go < 1.22
		g.Go(func() error {
			fields := in.Transactions[i].Fields()
			row := make([]span.Outcome, len(fields))
			for j, fld := range fields {
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
						Msg("field analysis failed, skipping field")
				}
				row[j] = oc
			}
			outs[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// all or nothing at the request boundary, partial state is dropped
		return domain.ScanResult{}, err
	}

	agg := candidate.NewAggregator()
	for i, row := range outs {
		fields := in.Transactions[i].Fields()
		for j, oc := range row {
			for _, sp := range oc.Spans {
				agg.Add(i, fields[j].Name, fields[j].Text, sp)
			}
		}
	}
	ranked := agg.Ranked()

	s.log.Info().
		Str("batch_id", batch).
		Int("rows", len(in.Transactions)).
		Int("candidates", len(ranked)).
		Int("spans", agg.Total()).
		Int64("failed_fields", failed.Load()).
		Msg("scan done")

	return domain.ScanResult{
		Candidates:   ranked,
		Count:        len(ranked),
		FailedFields: int(failed.Load()),
	}, nil
}
