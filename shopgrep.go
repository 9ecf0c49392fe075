// Package shopgrep turns noisy, human-oriented text captures of shopping
// pages into clean, deduplicated product records matching a caller-supplied
// keyword and price-range query. Pages are converted to markdown-like text
// by a crawling collaborator; extraction runs two strategies (a generative
// model over batched blocks, and a deterministic pattern-based fallback)
// and reconciles their output through a shared post-filter.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, rod/).
package shopgrep
