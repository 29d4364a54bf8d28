package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/goquery"
	ogphttp "github.com/fwojciec/ogpeek/http"
	"github.com/fwojciec/ogpeek/meta"
	"github.com/fwojciec/ogpeek/preview"
	"github.com/fwojciec/ogpeek/readability"
	"github.com/fwojciec/ogpeek/rod"
	ogpslog "github.com/fwojciec/ogpeek/slog"
	"github.com/fwojciec/ogpeek/sqlite"
	"github.com/fwojciec/ogpeek/trafilatura"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// User-Agent sent when fetching pages. Empty uses the fetcher default.
	UserAgent string

	// Input for commands reading from standard input.
	Stdin io.Reader

	// SQLite database used by the preview cache.
	DB *sqlite.DB
}

// Env holds the settings read from OGPEEK_* environment variables.
type Env struct {
	DB        string `envconfig:"DB"`
	UserAgent string `envconfig:"USER_AGENT"`
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	var env Env
	envconfig.MustProcess("ogpeek", &env)

	dbPath := env.DB
	if dbPath == "" {
		dbPath = defaultDBPath()
	}
	return &Main{
		DBPath:    dbPath,
		UserAgent: env.UserAgent,
		Stdin:     os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ogpeek"),
		kong.Description("Extract Open Graph metadata from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ogpeek --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.JSON = cli.JSON

	var flags PipelineFlags
	switch command {
	case "fetch":
		flags = cli.Fetch.Pipeline
	case "batch":
		flags = cli.Batch.Pipeline
	case "parse":
		flags.Extract = cli.Parse.Extract
		flags.NoCache = true
	}

	needsCache := command == "list" || command == "delete" ||
		((command == "fetch" || command == "batch") && !flags.NoCache)
	if needsCache {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set OGPEEK_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Previews = ogpslog.NewLoggingPreviewService(sqlite.NewPreviewService(m.DB), logger)
	}

	if command == "fetch" || command == "batch" || command == "parse" {
		p := &preview.Previewer{
			Extractor: ogpslog.NewLoggingExtractor(meta.NewExtractor(), "meta", logger),
			Previews:  deps.Previews,
			MaxAge:    flags.MaxAge,
			Strict:    flags.Extract.Strict,
			OnRetry: func(url string, attempt int, err error) {
				logger.Warn("fetch retry", "url", url, "attempt", attempt, "error", err)
			},
		}
		for _, name := range fallbackNames(flags.Extract.Fallback) {
			p.Fallbacks = append(p.Fallbacks, ogpslog.NewLoggingExtractor(newFallback(name), name, logger))
			deps.Fallbacks = append(deps.Fallbacks, name)
		}

		if command != "parse" {
			fetcher, err := m.newFetcher(flags)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer fetcher.Close()
			p.Fetcher = ogpslog.NewLoggingFetcher(fetcher, logger)
		}
		if command == "batch" {
			p.RateLimiter = preview.NewDomainLimiter(cli.Batch.Rate)
			deps.Sitemaps = ogpslog.NewLoggingSitemapService(ogphttp.NewSitemapService(nil), logger)
		}
		deps.Previewer = p
	}

	return kongCtx.Run(deps)
}

func (m *Main) newFetcher(flags PipelineFlags) (ogpeek.Fetcher, error) {
	if flags.Browser {
		return rod.NewFetcher(
			rod.WithFetchTimeout(flags.Timeout),
			rod.WithUserAgent(m.UserAgent),
		)
	}
	return ogphttp.NewFetcher(
		ogphttp.WithTimeout(flags.Timeout),
		ogphttp.WithUserAgent(m.UserAgent),
	), nil
}

// Fallback extractor names, in the order they are tried.
const (
	fallbackHead        = "head"
	fallbackReadability = "readability"
	fallbackContent     = "content"
)

func fallbackNames(mode string) []string {
	switch mode {
	case "none":
		return nil
	case fallbackHead, fallbackReadability, fallbackContent:
		return []string{mode}
	default:
		return []string{fallbackHead, fallbackReadability, fallbackContent}
	}
}

func newFallback(name string) ogpeek.Extractor {
	switch name {
	case fallbackReadability:
		return readability.NewExtractor()
	case fallbackContent:
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ogpeek.db"
	}
	dir := filepath.Join(home, ".ogpeek")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ogpeek.db")
}
