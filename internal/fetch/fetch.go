// Package fetch retrieves job-posting pages with browser-like headers and
// classifies transport failures and anti-bot signals. One attempt per call;
// retries belong to the caller.
package fetch

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrTimeout
	ErrNetwork
)

// Outcome is the raw result of one fetch. HTML may be non-empty even for
// status >= 400: challenge pages carry their markers in the body.
type Outcome struct {
	HTML             string
	StatusCode       int
	FinalURL         string
	Err              ErrKind
	CaptchaSuspected bool
}

type Config struct {
	Timeout       time.Duration
	UserAgent     string
	HostReqPerSec float64
	HostBurst     int
}

func (c *Config) setDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	}
	if c.HostReqPerSec <= 0 {
		c.HostReqPerSec = 2
	}
	if c.HostBurst <= 0 {
		c.HostBurst = 4
	}
}

type Fetcher struct {
	cfg     Config
	hc      *http.Client
	limiter *HostLimiter
	log     *zap.Logger
}

func New(cfg Config, log *zap.Logger) *Fetcher {
	cfg.setDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		cfg: cfg,
		// redirects are followed by default; challenge pages often sit
		// at the end of a redirect chain
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: NewHostLimiter(cfg.HostReqPerSec, cfg.HostBurst),
		log:     log,
	}
}

// Fetch issues a single GET. Transport failures come back classified in the
// Outcome, never as an error; the pipeline degrades instead of halting.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) Outcome {
	if err := f.limiter.WaitURL(ctx, rawURL); err != nil {
		return Outcome{Err: ErrTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Outcome{Err: ErrNetwork}
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	res, err := f.hc.Do(req)
	if err != nil {
		kind := ErrNetwork
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			kind = ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			kind = ErrTimeout
		}
		f.log.Warn("fetch failed", zap.String("url", rawURL), zap.Error(err))
		return Outcome{Err: kind}
	}
	defer res.Body.Close()

	// Read the body even on 4xx/5xx: anti-bot challenges return their
	// page behind 403/429/503. string() never fails on arbitrary bytes,
	// so malformed encodings degrade instead of erroring.
	body, readErr := io.ReadAll(io.LimitReader(res.Body, 10<<20))
	if readErr != nil && len(body) == 0 {
		f.log.Warn("fetch body unreadable", zap.String("url", rawURL), zap.Error(readErr))
		return Outcome{StatusCode: res.StatusCode, Err: ErrNetwork}
	}

	out := Outcome{
		HTML:       string(body),
		StatusCode: res.StatusCode,
		FinalURL:   res.Request.URL.String(),
	}
	out.CaptchaSuspected = SuspectCaptcha(res.StatusCode, out.HTML, out.FinalURL)
	if out.CaptchaSuspected {
		f.log.Info("captcha suspected",
			zap.String("url", rawURL),
			zap.Int("status", res.StatusCode),
			zap.Int("body_bytes", len(body)),
		)
	}
	return out
}
