package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eulerfetch/eulerfetch/internal/logger"
	"github.com/eulerfetch/eulerfetch/internal/output"
	"github.com/eulerfetch/eulerfetch/internal/scraper"
	"github.com/eulerfetch/eulerfetch/pkg/euler"
)

// fetchReport is the machine-readable summary of one fetched challenge.
type fetchReport struct {
	Number          int               `json:"number" yaml:"number"`
	URL             string            `json:"url" yaml:"url"`
	Title           string            `json:"title" yaml:"title"`
	Resources       map[string]string `json:"resources,omitempty" yaml:"resources,omitempty"`
	FetchDurationMs int64             `json:"fetch_duration_ms" yaml:"fetch_duration_ms"`
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <problem number>...",
	Short: "Fetch challenges and write them as Markdown",
	Long: `Fetch one or more challenges by problem number. Each challenge is written
to <output-dir>/<number>/README.md, and any resource files the description
links to (images, data files) are downloaded next to it.

Examples:
  # Fetch problem 18 into ./018/
  eulerfetch fetch 18

  # Fetch a batch with three concurrent requests
  eulerfetch fetch 1 2 3 4 5 -o challenges/ -c 3

  # Report the download manifest without writing files
  eulerfetch fetch 18 --dry-run --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	flags := fetchCmd.Flags()

	// Output settings
	flags.StringP("output-dir", "o", ".", "directory to write challenge directories into")
	flags.Bool("dry-run", false, "report what would be written instead of writing it")
	flags.String("format", "json", "dry-run report format: json, jsonl, yaml")

	// Fetch settings
	flags.String("fetch-mode", "static", "fetch mode: auto, static, dynamic")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.Duration("delay", 200*time.Millisecond, "delay between requests")
	flags.IntP("concurrency", "c", 1, "concurrent requests")
	flags.String("user-agent", "", "override the HTTP user agent")

	// Conversion settings
	flags.Bool("github-workaround", true, "rewrite \\operatorname for GitHub's Markdown renderer (use --github-workaround=false to disable)")

	// Site overrides come from config/env rather than flags
	_ = viper.BindPFlag("fetch_mode", flags.Lookup("fetch-mode"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
}

func runFetch(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	numbers, err := parseProblemNumbers(args)
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("problems to fetch", "count", len(numbers), "numbers", numbers)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	delay, _ := cmd.Flags().GetDuration("delay")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	githubWorkaround, _ := cmd.Flags().GetBool("github-workaround")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Site settings from config file / env, defaulting to projecteuler.net.
	site := euler.DefaultSite()
	if err := viper.UnmarshalKey("site", &site); err != nil {
		logError("invalid site config: %v", err)
		return err
	}

	client, err := euler.New(
		euler.WithSite(site),
		euler.WithFetchMode(scraper.FetchMode(viper.GetString("fetch_mode"))),
		euler.WithUserAgent(viper.GetString("user_agent")),
		euler.WithTimeout(timeout),
		euler.WithDelay(delay),
		euler.WithGithubWorkaround(githubWorkaround),
	)
	if err != nil {
		logError("%v", err)
		return err
	}
	defer func() { _ = client.Close() }()

	var writer output.Writer
	if dryRun {
		formatStr, _ := cmd.Flags().GetString("format")
		writer, err = output.NewWriter(os.Stdout, output.Format(formatStr))
		if err != nil {
			logError("%v", err)
			return err
		}
		defer func() { _ = writer.Close() }()
	}

	logger.Info("fetching challenges",
		"count", len(numbers),
		"concurrency", concurrency,
		"dry_run", dryRun)

	fetched := 0
	errorCount := 0
	for res := range client.FetchMany(ctx, numbers, concurrency) {
		if res.Error != nil {
			logger.Error("fetch failed", "number", res.Number, "error", res.Error)
			errorCount++
			continue
		}

		if dryRun {
			if err := writer.Write(fetchReport{
				Number:          res.Number,
				URL:             res.URL,
				Title:           res.Title,
				Resources:       res.Manifest,
				FetchDurationMs: res.FetchDuration.Milliseconds(),
			}); err != nil {
				logError("failed to write report: %v", err)
				return err
			}
		} else if err := writeChallenge(res, outputDir, timeout); err != nil {
			logger.Error("write failed", "number", res.Number, "error", err)
			errorCount++
			continue
		}
		fetched++
	}

	logger.Info("fetch complete", "fetched", fetched, "errors", errorCount)

	if errorCount > 0 {
		return fmt.Errorf("%d of %d challenges failed", errorCount, len(numbers))
	}
	return nil
}

// writeChallenge writes README.md and downloads manifest resources into the
// challenge's directory.
func writeChallenge(res *euler.Result, outputDir string, timeout time.Duration) error {
	dir := filepath.Join(outputDir, fmt.Sprintf("%03d", res.Number))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	readmePath := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readmePath, []byte(euler.BuildReadme(res)), 0o644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}
	logger.Debug("README written", "path", readmePath)

	if res.Manifest != nil {
		if err := scraper.DownloadAll(res.Manifest, dir, scraper.FetcherConfig{
			UserAgent: viper.GetString("user_agent"),
			Timeout:   timeout,
		}); err != nil {
			return err
		}
	}

	return nil
}

// parseProblemNumbers converts the positional arguments to problem numbers.
func parseProblemNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid problem number %q", arg)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
