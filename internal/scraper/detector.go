package scraper

import (
	"context"
	"fmt"
	"strings"
)

// FetchMode determines how pages are fetched.
type FetchMode string

const (
	FetchModeAuto    FetchMode = "auto"
	FetchModeStatic  FetchMode = "static"
	FetchModeDynamic FetchMode = "dynamic"
)

// NewFetcher creates an appropriate fetcher based on mode.
func NewFetcher(mode FetchMode, cfg FetcherConfig) (Fetcher, error) {
	switch mode {
	case FetchModeStatic:
		return NewStaticFetcher(cfg), nil
	case FetchModeDynamic:
		return NewDynamicFetcher(cfg)
	case FetchModeAuto:
		return NewAutoFetcher(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", mode)
	}
}

// AutoFetcher tries a static fetch first and falls back to a headless browser
// when the page appears to require JavaScript.
type AutoFetcher struct {
	static  *StaticFetcher
	dynamic *DynamicFetcher
}

// NewAutoFetcher creates a fetcher that auto-detects JS requirements.
func NewAutoFetcher(cfg FetcherConfig) (*AutoFetcher, error) {
	dynamic, err := NewDynamicFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic fetcher: %w", err)
	}

	return &AutoFetcher{
		static:  NewStaticFetcher(cfg),
		dynamic: dynamic,
	}, nil
}

// Fetch tries static first, then falls back to dynamic if needed.
func (f *AutoFetcher) Fetch(ctx context.Context, url string, opts FetchOptions) (Page, error) {
	page, err := f.static.Fetch(ctx, url, opts)
	if err != nil {
		return f.dynamic.Fetch(ctx, url, opts)
	}

	if needsJavaScript(page) {
		return f.dynamic.Fetch(ctx, url, opts)
	}

	return page, nil
}

// needsJavaScript checks if a page appears to require JS rendering.
func needsJavaScript(page Page) bool {
	html := strings.ToLower(page.HTML)

	// SPA framework markers
	spaMarkers := []string{
		"<div id=\"root\"></div>",   // React
		"<div id=\"app\"></div>",    // Vue
		"<app-root></app-root>",     // Angular
		"<div id=\"__next\"></div>", // Next.js
		"<div id=\"__nuxt\"></div>", // Nuxt.js
	}
	for _, marker := range spaMarkers {
		if strings.Contains(html, marker) {
			return true
		}
	}

	// Nearly empty body with a JS loading indicator
	if len(strings.TrimSpace(page.Text)) < 100 {
		text := strings.ToLower(page.Text)
		for _, indicator := range []string{"loading", "please wait", "javascript required", "enable javascript"} {
			if strings.Contains(text, indicator) {
				return true
			}
		}
	}

	return false
}

// Close releases all fetcher resources.
func (f *AutoFetcher) Close() error {
	if f.dynamic != nil {
		return f.dynamic.Close()
	}
	return nil
}

// Type returns the fetcher type.
func (f *AutoFetcher) Type() string {
	return "auto"
}
