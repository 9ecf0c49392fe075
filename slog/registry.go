package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/shopgrep"
)

// Ensure LoggingRegistry implements shopgrep.ProductSelectorRegistry.
var _ shopgrep.ProductSelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ProductSelectorRegistry with debug logging for
// storefront detection.
type LoggingRegistry struct {
	next     shopgrep.ProductSelectorRegistry
	detector shopgrep.SiteDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next shopgrep.ProductSelectorRegistry, detector shopgrep.SiteDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(site shopgrep.Site) shopgrep.ProductSelector {
	return r.next.Get(site)
}

// GetForHTML detects the storefront, logs it, and returns the appropriate
// selector.
func (r *LoggingRegistry) GetForHTML(html string) shopgrep.ProductSelector {
	begin := time.Now()
	site := r.detector.Detect(html)
	siteName := string(site)
	if site == shopgrep.SiteUnknown {
		siteName = "(unknown)"
	}
	r.logger.Info("storefront detection",
		"site", siteName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(site shopgrep.Site, selector shopgrep.ProductSelector) {
	r.next.Register(site, selector)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []shopgrep.Site {
	return r.next.List()
}
