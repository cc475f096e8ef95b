package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/shuku"
	"github.com/fwojciec/shuku/fs"
	"github.com/fwojciec/shuku/goquery"
	"github.com/fwojciec/shuku/htmltomarkdown"
	shukuhttp "github.com/fwojciec/shuku/http"
	"github.com/fwojciec/shuku/rod"
	"github.com/fwojciec/shuku/site"
	shukuslog "github.com/fwojciec/shuku/slog"
	"github.com/fwojciec/shuku/sqlite"
	"github.com/fwojciec/shuku/vocab"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads configuration. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database, open only when the sqlite store is selected.
	DB *sqlite.DB

	// Fetcher overrides the network transport for end-to-end testing.
	Fetcher shuku.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
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
	cfg, err := LoadConfig(m.Getenv)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("shuku"),
		kong.Description("Browse and read works from the Shuku novel site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'shuku --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := m.openStore(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set SHUKU_DB to use a different store path\n")
		return err
	}
	defer m.Close()

	var vocabulary shuku.TagVocabulary = vocab.NewCache(store)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cfg, cli.Browser)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
	}
	defer fetcher.Close()

	if cli.Debug {
		fetcher = shukuslog.NewLoggingFetcher(fetcher, logger)
		vocabulary = shukuslog.NewLoggingVocabulary(vocabulary, logger)
	}

	s := cfg.Site()
	detector := goquery.NewGateDetector()
	deps.Vocabulary = vocabulary
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Adapter = &site.Adapter{
		Site:             s,
		Fetcher:          fetcher,
		ListExtractor:    goquery.NewListExtractor(s),
		DetailExtractor:  goquery.NewDetailExtractor(s, detector),
		ContentSanitizer: goquery.NewContentSanitizer(detector),
		CommentExtractor: goquery.NewCommentExtractor(s),
		Vocabulary:       vocabulary,
		Logger:           logger,
	}

	return kongCtx.Run(deps)
}

func (m *Main) openStore(cfg Config) (shuku.KVStore, error) {
	if cfg.StorePath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if cfg.Store == StoreFile {
		return fs.NewKVStore(cfg.StorePath), nil
	}

	m.DB = sqlite.NewDB(cfg.StorePath)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return nil, fmt.Errorf("failed to open database at %q: %w", cfg.StorePath, err)
	}
	return sqlite.NewKVStore(m.DB), nil
}

func newFetcher(cfg Config, browser bool) (shuku.Fetcher, error) {
	if browser {
		f, err := rod.NewFetcher(
			rod.WithUserAgent(cfg.UserAgent),
			rod.WithCookie(cfg.Cookie),
		)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return shukuhttp.NewFetcher(
		shukuhttp.WithUserAgent(cfg.UserAgent),
		shukuhttp.WithCookie(cfg.Cookie),
	), nil
}
