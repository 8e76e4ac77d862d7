package scraper

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gocolly/colly/v2"

	"github.com/eulerfetch/eulerfetch/internal/logger"
)

// DownloadAll fetches every manifest resource into dir, using the sanitized
// manifest key as the local file name. The manifest keys are produced by the
// converter and are already safe path components.
func DownloadAll(resources map[string]string, dir string, cfg FetcherConfig) error {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultFetcherConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultFetcherConfig().Timeout
	}

	for fileName, remoteURL := range resources {
		if err := download(remoteURL, filepath.Join(dir, fileName), cfg); err != nil {
			return fmt.Errorf("failed to download %s: %w", remoteURL, err)
		}
	}
	return nil
}

// download retrieves a single remote file and writes it to path.
func download(remoteURL, path string, cfg FetcherConfig) error {
	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
	)
	c.SetRequestTimeout(cfg.Timeout)

	var saveErr error
	var size int

	c.OnResponse(func(r *colly.Response) {
		size = len(r.Body)
		saveErr = r.Save(path)
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch error: %w", err)
	})

	if err := c.Visit(remoteURL); err != nil {
		return fmt.Errorf("failed to visit URL: %w", err)
	}
	if fetchErr != nil {
		return fetchErr
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save file: %w", saveErr)
	}

	logger.Debug("resource downloaded",
		"url", remoteURL,
		"path", path,
		"size", humanize.Bytes(uint64(size)))
	return nil
}
