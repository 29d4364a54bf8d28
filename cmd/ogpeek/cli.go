package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/preview"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// JSON selects machine-readable output.
	JSON bool

	Previews  ogpeek.PreviewService
	Sitemaps  ogpeek.SitemapService
	Previewer *preview.Previewer

	// Fallbacks names the previewer's fallback extractors in order.
	Fallbacks []string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline activity to stderr"`
	JSON    bool `help:"Write output as JSON"`

	Fetch  FetchCmd  `cmd:"" help:"Preview one or more URLs"`
	Parse  ParseCmd  `cmd:"" help:"Preview an HTML file or standard input"`
	Batch  BatchCmd  `cmd:"" help:"Preview many URLs concurrently"`
	List   ListCmd   `cmd:"" help:"List cached previews"`
	Delete DeleteCmd `cmd:"" help:"Delete the cached preview of a URL"`
}

// ExtractFlags configure extraction.
type ExtractFlags struct {
	Fallback string `enum:"none,head,readability,content,all" default:"all" help:"Extractors to try when a page has no Open Graph tags (none, head, readability, content, all)"`
	Strict   bool   `help:"Fail on markup that cannot be scanned to the end"`
}

// PipelineFlags configure fetching, extraction and caching.
type PipelineFlags struct {
	Extract ExtractFlags  `embed:""`
	Browser bool          `short:"b" help:"Render pages in a headless browser"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	NoCache bool          `help:"Neither read nor write the preview cache"`
	MaxAge  time.Duration `default:"24h" help:"Serve cached previews younger than this"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs     []string      `arg:"" name:"url" help:"Page URLs"`
	Raw      bool          `help:"Show property bags instead of records"`
	Pipeline PipelineFlags `embed:""`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File    string       `arg:"" optional:"" help:"HTML file (default: standard input)"`
	URL     string       `short:"u" help:"URL the page was retrieved from"`
	Raw     bool         `help:"Show property bags instead of records"`
	Extract ExtractFlags `embed:""`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string      `arg:"" optional:"" name:"url" help:"Page URLs"`
	File        string        `short:"f" help:"Read URLs from a file, one per line ('-' for standard input)"`
	Sitemap     string        `short:"s" help:"Discover URLs from the sitemaps of a site"`
	Include     []string      `short:"i" help:"Keep only sitemap URLs matching regex (repeatable)"`
	Exclude     []string      `short:"x" help:"Drop sitemap URLs matching regex (repeatable)"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Rate        float64       `default:"1" help:"Requests per second per domain (0 disables limiting)"`
	Pipeline    PipelineFlags `embed:""`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit  int `short:"n" default:"50" help:"Maximum number of previews to show (0 for all)"`
	Offset int `help:"Number of previews to skip"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL string `arg:"" help:"Page URL"`
}
