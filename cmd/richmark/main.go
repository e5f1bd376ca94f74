package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/pwalkowski/richmark/extract"
	"github.com/pwalkowski/richmark/fs"
	"github.com/pwalkowski/richmark/goquery"
	richhttp "github.com/pwalkowski/richmark/http"
	richslog "github.com/pwalkowski/richmark/slog"
	"github.com/pwalkowski/richmark/sqlite"
	"github.com/pwalkowski/richmark/yaml"
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
	// SQLite database holding the build catalog. Opened for build runs.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("richmark"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'richmark --help' to see available commands")
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

	parserImpl := goquery.NewParser()

	switch cmd {
	case "build":
		cfg, err := yaml.Load(cli.Build.Config)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: pass --config to use a different configuration file")
			return err
		}
		deps.Config = cfg

		m.DB = sqlite.NewDB(cli.Build.Catalog)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open catalog at %q: %w", cli.Build.Catalog, err)
		}
		defer m.Close()
		deps.DB = m.DB
		deps.Catalog = sqlite.NewCatalogService(m.DB)

		store := fs.NewPageStore(cli.Build.Root)
		videos := richslog.NewLoggingVideoService(
			richhttp.NewVideoClient(richhttp.WithTimeout(cfg.VideoTimeout)),
			deps.Logger,
		)
		deps.Store = store
		deps.Writer = fs.NewWriter(cli.Build.Root)
		deps.Extractor = richslog.NewLoggingExtractor(
			extract.New(cfg, parserImpl, store, videos),
			deps.Logger,
		)

	case "extract":
		cfg, err := yaml.Load(cli.Extract.Config)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: pass --config to use a different configuration file")
			return err
		}
		deps.Config = cfg

		// A single page still gets path-derived kinds and provenance, so
		// the store is rooted at the file's directory.
		store := fs.NewPageStore(filepath.Dir(cli.Extract.File))
		videos := richhttp.NewVideoClient(richhttp.WithTimeout(cfg.VideoTimeout))
		deps.Store = store
		deps.Extractor = extract.New(cfg, parserImpl, store, videos)
	}

	return kongCtx.Run(deps)
}
