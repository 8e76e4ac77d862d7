// Package scraper handles challenge page fetching and resource downloads.
package scraper

import (
	"context"
	"time"
)

// Page represents a fetched challenge page.
type Page struct {
	URL         string
	HTML        string
	Text        string // Extracted readable text, used for JS detection
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// FetchOptions controls fetching behavior for a single request.
type FetchOptions struct {
	UserAgent       string
	Timeout         time.Duration
	WaitForSelector string        // CSS selector to wait for (dynamic only)
	WaitDuration    time.Duration // Additional wait after load (dynamic only)
	Headers         map[string]string
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts FetchOptions) (Page, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static", "dynamic", or "auto".
	Type() string
}

// FetcherConfig holds common fetcher configuration.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultFetcherConfig returns sensible defaults.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		UserAgent: "eulerfetch/1.0 (+https://github.com/eulerfetch/eulerfetch)",
		Timeout:   30 * time.Second,
	}
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
