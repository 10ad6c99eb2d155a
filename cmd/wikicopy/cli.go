package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wikicopy"
	"github.com/fwojciec/wikicopy/importer"
	"github.com/fwojciec/wikicopy/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	BaseURL  string
	Resolver *search.Resolver
	Importer *importer.Importer
	Text     wikicopy.TextExtractor
	Markdown wikicopy.Converter

	// Clipboard receives exports made with --clipboard.
	Clipboard wikicopy.Sink

	// Now stamps exported frontmatter. Defaults to time.Now.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL  string        `name:"base-url" env:"WIKICOPY_BASE_URL" default:"https://en.wikipedia.org" help:"Wiki site root"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Timeout per API request"`
	RPS      float64       `name:"rps" default:"5" help:"Maximum API requests per second"`
	Backend  string        `enum:"prefix,opensearch" default:"prefix" help:"Search backend (prefix, opensearch)"`
	CacheTTL time.Duration `name:"cache-ttl" default:"5m" help:"How long search results are reused (0 disables)"`
	Verbose  bool          `short:"v" help:"Log API calls to stderr"`

	Search SearchCmd `cmd:"" help:"Search for articles by title"`
	Import ImportCmd `cmd:"" help:"Fetch an article and export normalized content"`
	Browse BrowseCmd `cmd:"" help:"Search interactively and import a result"`
}

// ExportFlags controls how an imported article is rendered and where it goes.
type ExportFlags struct {
	Mode        string `enum:"strip,preserve" default:"strip" help:"Emphasis handling (strip, preserve)"`
	Format      string `short:"f" enum:"html,text,markdown" default:"html" help:"Output format (html, text, markdown)"`
	Out         string `short:"o" xor:"dest" help:"Write to this file or directory instead of stdout"`
	Clipboard   bool   `short:"c" xor:"dest" help:"Copy to the system clipboard instead of stdout"`
	Frontmatter bool   `help:"Prefix output with YAML frontmatter"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search query"`
	Limit int      `short:"n" default:"5" help:"Maximum number of results (1-5)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Title string `arg:"" optional:"" help:"Article title"`
	ID    int    `name:"id" help:"Article page id"`

	ExportFlags `embed:""`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Debounce time.Duration `default:"300ms" hidden:"" help:"Quiet period before searching"`

	ExportFlags `embed:""`
}
