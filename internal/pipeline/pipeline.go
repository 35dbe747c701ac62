// Package pipeline sequences fetch → classify → extract → reconcile and is
// the single entry point the serving layer consumes.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobextract-engine/internal/ai"
	"jobextract-engine/internal/classify"
	"jobextract-engine/internal/domain"
	"jobextract-engine/internal/events"
	"jobextract-engine/internal/extract"
	"jobextract-engine/internal/fetch"
	"jobextract-engine/internal/reconcile"
	"jobextract-engine/internal/store"
)

// ErrEmptyURL is the one programming-error escape hatch: content-extraction
// failures come back as success=false records, never as errors.
var ErrEmptyURL = errors.New("extraction request has no url")

// PageFetcher is what the pipeline needs from the transport layer; tests
// substitute fakes.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) fetch.Outcome
}

type Pipeline struct {
	fetcher PageFetcher
	ai      *ai.Extractor
	db      *store.DB   // optional journal
	hub     *events.Hub // optional
	log     *zap.Logger
}

func New(fetcher PageFetcher, aiExtractor *ai.Extractor, db *store.DB, hub *events.Hub, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{fetcher: fetcher, ai: aiExtractor, db: db, hub: hub, log: log}
}

// Extract runs the full pipeline for one URL. When req.HTML is set the
// fetch step is skipped entirely (the CAPTCHA retry path) and anti-bot
// signals do not apply.
func (p *Pipeline) Extract(ctx context.Context, req domain.SourceRequest) (domain.ReconciledRecord, error) {
	if strings.TrimSpace(req.URL) == "" {
		return domain.ReconciledRecord{}, ErrEmptyURL
	}

	html := req.HTML
	captcha := false
	if html == "" {
		out := p.fetcher.Fetch(ctx, req.URL)
		html = out.HTML
		captcha = out.CaptchaSuspected
		if out.Err != fetch.ErrNone {
			p.log.Info("fetch degraded, extractors get no html",
				zap.String("url", req.URL),
				zap.Int("err_kind", int(out.Err)),
			)
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.ReconciledRecord{}, err
	}

	source := classify.Classify(req.URL)
	structured, aiRes, err := p.runExtractors(ctx, html, req.URL, source)
	if err != nil {
		return domain.ReconciledRecord{}, err
	}

	rec := reconcile.Merge(structured, aiRes, source, req.URL)

	// CAPTCHA suspicion is a signal, not a failure: only when the page
	// yielded nothing usable does the caller need to supply HTML manually.
	if captcha && !rec.Success {
		rec.NeedsManualHTML = true
	}

	p.finish(ctx, rec, req)
	return rec, nil
}

// runExtractors fans out the two strategies concurrently. They share
// nothing beyond the fetched HTML; each degrades independently.
func (p *Pipeline) runExtractors(ctx context.Context, html, rawURL string, source domain.AdSource) (structured, aiRes domain.ExtractionResult, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		structured = extract.ForSource(source).Parse(html, rawURL)
		return nil
	})
	g.Go(func() error {
		aiRes = p.ai.Extract(gctx, html, rawURL, source)
		return nil
	})
	_ = g.Wait()

	// all-or-nothing: a cancelled caller gets no partial record
	if cerr := ctx.Err(); cerr != nil {
		return domain.ExtractionResult{}, domain.ExtractionResult{}, cerr
	}
	return structured, aiRes, nil
}

func (p *Pipeline) finish(ctx context.Context, rec domain.ReconciledRecord, req domain.SourceRequest) {
	p.log.Info("extraction finished",
		zap.String("url", rec.URL),
		zap.String("ad_source", string(rec.AdSource)),
		zap.String("method", rec.Method),
		zap.Bool("success", rec.Success),
		zap.Bool("needs_manual_html", rec.NeedsManualHTML),
	)

	if p.db != nil {
		if err := p.db.InsertExtraction(ctx, rec, req.RequestedBy); err != nil {
			p.log.Warn("journal insert failed", zap.Error(err))
		}
	}
	if p.hub != nil {
		typ := events.TypeExtractionCompleted
		if rec.NeedsManualHTML {
			typ = events.TypeManualHTMLNeeded
		}
		p.hub.Publish(events.Make("", typ, map[string]any{
			"url":     rec.URL,
			"success": rec.Success,
		}))
	}
}
