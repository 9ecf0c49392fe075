package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/crawl"
	"github.com/fwojciec/shopgrep/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB       *sqlite.DB
	Scans    shopgrep.ScanService
	Products shopgrep.ProductService
	Sitemaps shopgrep.SitemapService

	// Scan dependencies. Fetcher is picked by the scan command itself.
	Scanner        *crawl.Scanner
	HTTPFetcher    shopgrep.Fetcher
	BrowserFetcher shopgrep.Fetcher
	Detector       shopgrep.SiteDetector
	Extractor      shopgrep.Extractor

	// Extraction pipeline for the extract command.
	Pipeline shopgrep.ProductExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scan    ScanCmd    `cmd:"" help:"Search a storefront and extract products"`
	Extract ExtractCmd `cmd:"" help:"Extract products from a saved page capture"`
	List    ListCmd    `cmd:"" help:"List scans, or products of one scan"`
	Export  ExportCmd  `cmd:"" help:"Export scan products to CSV or XLSX"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a scan and its products"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Site     string   `arg:"" help:"Storefront: amazon, flipkart, croma, tatacliq (anything else searches the web)"`
	Keywords []string `arg:"" help:"Search keywords"`

	MinPrice         int     `help:"Minimum price in whole currency units"`
	MaxPrice         int     `help:"Maximum price in whole currency units"`
	Pages            int     `short:"p" default:"3" help:"Search result pages to seed"`
	MaxPages         int     `default:"25" help:"Total page fetch cap"`
	FollowPagination bool    `default:"true" negatable:"" help:"Follow discovered pagination links"`
	Concurrency      int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate             float64 `default:"1" help:"Requests per second per domain"`

	Sitemap       string `help:"Also seed pages discovered from this site's sitemap (base URL)"`
	SitemapFilter string `help:"Regexp sitemap URLs must match to be seeded"`

	Static    bool   `help:"Force plain HTTP fetching"`
	Browser   bool   `help:"Force headless browser fetching"`
	Offline   bool   `help:"Use a local Ollama server instead of Gemini"`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Boilerplate removal strategy"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string   `arg:"" optional:"" help:"Page capture file (reads stdin when omitted)"`
	Keywords []string `short:"k" required:"" help:"Query keywords"`
	MinPrice int      `help:"Minimum price in whole currency units"`
	MaxPrice int      `help:"Maximum price in whole currency units"`
	Offline  bool     `help:"Use a local Ollama server instead of Gemini"`
	JSON     bool     `help:"Print products as JSON"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Scan string `arg:"" optional:"" help:"Scan ID to show products for"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Scan string `arg:"" help:"Scan ID"`
	Path string `arg:"" help:"Output file, format chosen by extension (.csv or .xlsx)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Scan  string `arg:"" help:"Scan ID"`
	Force bool   `help:"Confirm deletion"`
}
