package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/crawl"
	"github.com/fwojciec/shopgrep/extract"
	"github.com/fwojciec/shopgrep/gemini"
	"github.com/fwojciec/shopgrep/goquery"
	"github.com/fwojciec/shopgrep/htmltomarkdown"
	shophttp "github.com/fwojciec/shopgrep/http"
	"github.com/fwojciec/shopgrep/ollama"
	"github.com/fwojciec/shopgrep/readability"
	"github.com/fwojciec/shopgrep/rod"
	shopslog "github.com/fwojciec/shopgrep/slog"
	"github.com/fwojciec/shopgrep/sqlite"
	"github.com/fwojciec/shopgrep/trafilatura"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ScanService    shopgrep.ScanService
	ProductService shopgrep.ProductService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shopgrep"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shopgrep --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SHOPGREP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ScanService = sqlite.NewScanService(m.DB)
	m.ProductService = sqlite.NewProductService(m.DB)
	deps.DB = m.DB
	deps.Scans = m.ScanService
	deps.Products = m.ProductService
	deps.Sitemaps = shopslog.NewLoggingSitemapService(shophttp.NewSitemapService(nil), logger)

	// Commands that extract need the pipeline and its generator
	if cmd == "scan" || cmd == "extract" {
		offline := cli.Scan.Offline
		if cmd == "extract" {
			offline = cli.Extract.Offline
		}

		generator, err := buildGenerator(ctx, offline, stderr)
		if err != nil {
			return err
		}
		if generator != nil {
			generator = shopslog.NewLoggingGenerator(generator, logger)
		}

		pipeline := &extract.Pipeline{
			Generator: generator,
			Limiter:   rate.NewLimiter(rate.Limit(1), extract.DefaultConcurrency),
			Stats:     shopslog.StatsLogger(logger),
		}
		deps.Pipeline = shopslog.NewLoggingProductExtractor(pipeline, logger)
	}

	if cmd == "scan" {
		extractor := pageExtractor(cli.Scan.Extractor)
		detector := goquery.NewDetector()
		registry := shopslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), detector, logger)

		deps.Detector = detector
		deps.Extractor = extractor
		deps.HTTPFetcher = shopslog.NewLoggingFetcher(shophttp.NewFetcher(), logger)

		if !cli.Scan.Static {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer browser.Close()
			deps.BrowserFetcher = shopslog.NewLoggingFetcher(browser, logger)
		}

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		deps.Scanner = &crawl.Scanner{
			Extractor:        extractor,
			Converter:        htmltomarkdown.NewConverter(),
			Pipeline:         deps.Pipeline,
			Selectors:        registry,
			Scans:            deps.Scans,
			Products:         deps.Products,
			TokenCounter:     tokenCounter,
			RateLimiter:      crawl.NewDomainLimiter(cli.Scan.Rate),
			Concurrency:      cli.Scan.Concurrency,
			MaxPages:         cli.Scan.MaxPages,
			FollowPagination: cli.Scan.FollowPagination,
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

// buildGenerator picks the generation backend. Gemini when an API key is
// set, Ollama with --offline, nil (deterministic extraction only) when
// neither is available.
func buildGenerator(ctx context.Context, offline bool, stderr io.Writer) (shopgrep.Generator, error) {
	if offline {
		var opts []ollama.Option
		if host := os.Getenv("OLLAMA_HOST"); host != "" {
			opts = append(opts, ollama.WithBaseURL(host))
		}
		return ollama.NewGenerator(opts...), nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY not set: using deterministic extraction only. Pass --offline to use a local Ollama server.")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewGenerator(client, ""), nil
}

func pageExtractor(name string) shopgrep.Extractor {
	if name == "readability" {
		return readability.NewExtractor()
	}
	return trafilatura.NewExtractor()
}

func defaultDBPath() string {
	if path := os.Getenv("SHOPGREP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "shopgrep.db"
	}
	dir := filepath.Join(home, ".shopgrep")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "shopgrep.db")
}
