package euler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/eulerfetch/eulerfetch/internal/logger"
	"github.com/eulerfetch/eulerfetch/internal/scraper"
	"github.com/eulerfetch/eulerfetch/pkg/converter"
)

// Result represents one fetched and converted challenge.
type Result struct {
	Number        int
	URL           string
	Title         string
	Markdown      string             // Sanitized description with rewritten links
	Manifest      converter.Manifest // Remote resources to download, nil if none
	FetchedAt     time.Time
	FetchDuration time.Duration
	Error         error // Set instead of the other fields on failure
}

// Client fetches challenge pages and converts their descriptions to Markdown.
type Client struct {
	fetcher   scraper.Fetcher
	converter *converter.Converter
	config    Config
}

// New creates a new Client.
func New(opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Site.Validate(); err != nil {
		return nil, err
	}

	f := cfg.Fetcher
	if f == nil {
		var err error
		f, err = scraper.NewFetcher(cfg.FetchMode, scraper.FetcherConfig{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fetcher: %w", err)
		}
	}

	return &Client{
		fetcher: f,
		converter: converter.New(converter.Config{
			BaseURL:          cfg.Site.BaseURL,
			ChallengeBaseURL: cfg.Site.ChallengeBaseURL,
		}),
		config: cfg,
	}, nil
}

// Fetch retrieves a single challenge and converts its description.
func (c *Client) Fetch(ctx context.Context, number int) (*Result, error) {
	pageURL := c.config.Site.ChallengeBaseURL + strconv.Itoa(number)

	fetchStart := time.Now()
	page, err := c.fetcher.Fetch(ctx, pageURL, scraper.FetchOptions{
		UserAgent: c.config.UserAgent,
		Timeout:   c.config.Timeout,
	})
	fetchDuration := time.Since(fetchStart)
	if err != nil {
		return nil, fmt.Errorf("problem %d: fetch failed: %w", number, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, fmt.Errorf("problem %d: failed to parse page: %w", number, err)
	}

	content := doc.Find(c.config.Site.ContentSelector).First()
	if content.Length() == 0 {
		return nil, fmt.Errorf("problem %d: no challenge description found at %s", number, pageURL)
	}

	title := strings.TrimSpace(doc.Find(c.config.Site.TitleSelector).First().Text())

	manifest, err := c.converter.ConvertLinks(content)
	if err != nil {
		return nil, fmt.Errorf("problem %d: %w", number, err)
	}

	markdown := converter.SanitizeText(content, c.config.GithubWorkaround)

	logger.Debug("challenge converted",
		"number", number,
		"title", title,
		"resources", len(manifest),
		"fetch_duration", fetchDuration)

	return &Result{
		Number:        number,
		URL:           pageURL,
		Title:         title,
		Markdown:      markdown,
		Manifest:      manifest,
		FetchedAt:     page.FetchedAt,
		FetchDuration: fetchDuration,
	}, nil
}

// FetchMany fetches multiple challenges concurrently. Failed fetches are
// reported as Results with Error set; the channel is closed once all numbers
// have been processed.
func (c *Client) FetchMany(ctx context.Context, numbers []int, concurrency int) <-chan *Result {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make(chan *Result, len(numbers))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, number := range numbers {
		if i > 0 && c.config.Delay > 0 {
			time.Sleep(c.config.Delay)
		}

		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result, err := c.Fetch(ctx, n)
			if err != nil {
				results <- &Result{Number: n, Error: err}
				return
			}
			results <- result
		}(number)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// Close releases fetcher resources.
func (c *Client) Close() error {
	return c.fetcher.Close()
}
