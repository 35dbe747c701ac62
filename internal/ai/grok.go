// Package ai extracts job-posting fields by prompting an LLM with a trimmed
// representation of the fetched page. It degrades to a sentinel-filled
// result on every failure; this strategy alone never fails the pipeline.
package ai

import (
	"context"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"jobextract-engine/internal/domain"
)

const (
	methodOK     = "grok"
	methodFailed = "grok-failed"
)

type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	MaxExcerptChars int
}

func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.x.ai/v1"
	}
	if c.Model == "" {
		c.Model = "grok-2-latest"
	}
	if c.Timeout <= 0 {
		// a separate outbound service; never shares the page-fetch deadline
		c.Timeout = 45 * time.Second
	}
	if c.MaxExcerptChars <= 0 {
		c.MaxExcerptChars = 20000
	}
}

type Extractor struct {
	llm llms.Model // nil when no credential is configured
	cfg Config
	log *zap.Logger
}

// New builds the Grok-backed extractor. A missing API key is not an error:
// the extractor is constructed degraded and every call returns grok-failed.
func New(cfg Config, log *zap.Logger) (*Extractor, error) {
	cfg.setDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.APIKey == "" {
		log.Warn("no x.ai API key configured; AI extraction disabled")
		return &Extractor{cfg: cfg, log: log}, nil
	}

	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}
	return &Extractor{llm: llm, cfg: cfg, log: log}, nil
}

// NewWithModel injects an llms.Model directly. Tests use it to fake the
// service.
func NewWithModel(llm llms.Model, cfg Config, log *zap.Logger) *Extractor {
	cfg.setDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{llm: llm, cfg: cfg, log: log}
}

// Extract prompts the model with a bounded excerpt of the page and parses
// its JSON reply. All failure modes (no credential, no HTML, transport,
// malformed reply) return a degraded result instead of an error.
func (e *Extractor) Extract(ctx context.Context, html, rawURL string, source domain.AdSource) domain.ExtractionResult {
	if e.llm == nil || html == "" {
		return domain.Degraded(methodFailed, source)
	}

	excerpt := Excerpt(html, e.cfg.MaxExcerptChars)
	if excerpt == "" {
		return domain.Degraded(methodFailed, source)
	}

	cctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	reply, err := llms.GenerateFromSinglePrompt(cctx, e.llm, buildPrompt(excerpt, rawURL),
		llms.WithTemperature(0),
	)
	if err != nil {
		e.log.Warn("grok call failed", zap.String("url", rawURL), zap.Error(err))
		return domain.Degraded(methodFailed, source)
	}

	fields, err := parseReply(reply)
	if err != nil {
		e.log.Warn("grok reply unparseable", zap.String("url", rawURL), zap.Error(err))
		return domain.Degraded(methodFailed, source)
	}

	return domain.NewResult(
		fields.Company,
		fields.JobTitle,
		fields.FullDescription,
		fields.HiringManager,
		methodOK,
		source,
	)
}
