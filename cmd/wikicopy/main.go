package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikicopy"
	"github.com/fwojciec/wikicopy/clipboard"
	"github.com/fwojciec/wikicopy/gocache"
	"github.com/fwojciec/wikicopy/goquery"
	"github.com/fwojciec/wikicopy/htmltomarkdown"
	wchttp "github.com/fwojciec/wikicopy/http"
	"github.com/fwojciec/wikicopy/importer"
	"github.com/fwojciec/wikicopy/search"
	wcslog "github.com/fwojciec/wikicopy/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin feeds the interactive browse command.
	Stdin io.Reader

	// Clipboard receives --clipboard exports.
	Clipboard wikicopy.Sink
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:     os.Stdin,
		Clipboard: clipboard.NewSink(),
	}
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
		kong.Name("wikicopy"),
		kong.Description("Search Wikipedia and export clean, normalized articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return wikicopy.Errorf(wikicopy.EINVALID, "no command specified. Run 'wikicopy --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.RPS <= 0 {
		return wikicopy.Errorf(wikicopy.EINVALID, "--rps must be positive")
	}

	m.wire(cli, deps)

	return kongCtx.Run(deps)
}

// wire builds the service graph from the parsed global flags.
func (m *Main) wire(cli *CLI, deps *Dependencies) {
	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	client := wchttp.NewClient(
		wchttp.WithBaseURL(cli.BaseURL),
		wchttp.WithTimeout(cli.Timeout),
		wchttp.WithRequestsPerSecond(cli.RPS),
	)

	var searcher wikicopy.Searcher = wchttp.NewPrefixSearchService(client)
	if cli.Backend == "opensearch" {
		searcher = wchttp.NewOpenSearchService(client)
	}
	searcher = wcslog.NewLoggingSearcher(searcher, logger)
	if cli.CacheTTL > 0 {
		searcher = gocache.NewCachingSearcher(searcher, cli.CacheTTL)
	}
	ids := wcslog.NewLoggingIDResolver(wchttp.NewIDService(client), logger)

	deps.Logger = logger
	deps.BaseURL = client.BaseURL()
	deps.Resolver = &search.Resolver{
		Searcher:  searcher,
		IDs:       ids,
		Sanitizer: goquery.NewSnippetSanitizer(),
		Logger:    logger,
	}
	text := goquery.NewTextExtractor()
	deps.Importer = &importer.Importer{
		Content:    wcslog.NewLoggingContentService(wchttp.NewContentService(client), logger),
		IDs:        ids,
		Normalizer: goquery.NewNormalizer(goquery.WithBaseURL(client.BaseURL())),
		Text:       text,
		Logger:     logger,
	}
	deps.Text = text
	deps.Markdown = htmltomarkdown.NewConverter(client.BaseURL())
	deps.Clipboard = m.Clipboard
}
