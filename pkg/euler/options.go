// Package euler provides the public API for fetching challenge descriptions
// and converting them to Markdown.
package euler

import (
	"time"

	"github.com/eulerfetch/eulerfetch/internal/scraper"
)

// Config holds all Client configuration.
type Config struct {
	// Site settings
	Site SiteConfig

	// Fetch settings
	FetchMode scraper.FetchMode
	UserAgent string
	Timeout   time.Duration
	Delay     time.Duration // Pause between requests in FetchMany

	// GithubWorkaround rewrites \operatorname for GitHub's Markdown renderer.
	GithubWorkaround bool

	// Fetcher overrides the fetcher built from FetchMode (mainly for tests).
	Fetcher scraper.Fetcher
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Site:             DefaultSite(),
		FetchMode:        scraper.FetchModeStatic,
		Timeout:          30 * time.Second,
		Delay:            200 * time.Millisecond,
		GithubWorkaround: true,
	}
}

// Option configures a Client.
type Option func(*Config)

// WithSite sets the site configuration.
func WithSite(site SiteConfig) Option {
	return func(c *Config) {
		c.Site = site
	}
}

// WithFetchMode sets the fetch mode (auto, static, dynamic).
func WithFetchMode(mode scraper.FetchMode) Option {
	return func(c *Config) {
		c.FetchMode = mode
	}
}

// WithUserAgent sets the HTTP user agent.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithDelay sets the pause between requests in FetchMany.
func WithDelay(delay time.Duration) Option {
	return func(c *Config) {
		c.Delay = delay
	}
}

// WithGithubWorkaround toggles the \operatorname rewrite.
func WithGithubWorkaround(enabled bool) Option {
	return func(c *Config) {
		c.GithubWorkaround = enabled
	}
}

// WithFetcher injects a custom fetcher.
func WithFetcher(f scraper.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}
