package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"listing-sync/core/logger"
	"listing-sync/core/reconcile"
	"listing-sync/feature/listings/models"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Feed reads listings from the remote XML feed.
type Feed struct {
	cfg    Config
	client *retryablehttp.Client
	logger *zap.Logger
}

// NewFeed creates a feed reader. Retries only happen when cfg.RetryMax > 0.
func NewFeed(cfg Config, l *zap.Logger) *Feed {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout()
	client.Logger = logger.NewLeveled(l.Named("feed.http"))
	// hand the last response back so the status code can be reported
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Feed{cfg: cfg, client: client, logger: l}
}

// Fetch downloads and parses the whole feed. Failures are *reconcile.FetchError
// or *reconcile.ParseError.
func (f *Feed) Fetch(ctx context.Context) ([]models.Listing, error) {
	if f.cfg.URL == "" {
		return nil, &reconcile.FetchError{URL: f.cfg.URL, Err: fmt.Errorf("feed url is not configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout())
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
	if err != nil {
		return nil, &reconcile.FetchError{URL: f.cfg.URL, Err: err}
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &reconcile.FetchError{URL: f.cfg.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &reconcile.FetchError{URL: f.cfg.URL, StatusCode: resp.StatusCode}
	}

	limit := f.cfg.maxBody()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &reconcile.FetchError{URL: f.cfg.URL, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > limit {
		return nil, &reconcile.FetchError{URL: f.cfg.URL, Err: fmt.Errorf("body exceeds %d bytes", limit)}
	}

	listings, skipped, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	f.logger.Info("Fetched listing feed",
		zap.Int("listings", len(listings)),
		zap.Int("skipped", skipped),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return listings, nil
}
