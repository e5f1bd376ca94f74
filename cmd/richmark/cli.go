package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pwalkowski/richmark"
	"github.com/pwalkowski/richmark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *richmark.Config
	DB        *sqlite.DB
	Store     richmark.PageStore
	Catalog   richmark.CatalogService
	Writer    richmark.ScriptWriter
	Extractor richmark.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build   BuildCmd   `cmd:"" help:"Extract and inject JSON-LD across a site tree"`
	Extract ExtractCmd `cmd:"" help:"Extract JSON-LD from a single page to stdout"`
	Kinds   KindsCmd   `cmd:"" help:"List supported entity kinds"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Root        string   `arg:"" help:"Site root directory"`
	Config      string   `short:"c" default:"richmark.yml" help:"Configuration file path"`
	Catalog     string   `default:".richmark.db" help:"Build catalog database path"`
	Kinds       []string `short:"k" help:"Entity kinds to extract (default all)"`
	Concurrency int      `default:"8" help:"Concurrent page limit"`
	Force       bool     `short:"f" help:"Rebuild unchanged pages"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File   string   `arg:"" help:"Page file path"`
	Config string   `short:"c" default:"richmark.yml" help:"Configuration file path"`
	Kinds  []string `short:"k" help:"Entity kinds to extract (default all)"`
}

// KindsCmd is the "kinds" subcommand.
type KindsCmd struct{}

// parseKinds resolves kind names from the command line. An empty list means
// every supported kind.
func parseKinds(names []string) ([]richmark.Kind, error) {
	if len(names) == 0 {
		return richmark.Kinds(), nil
	}
	kinds := make([]richmark.Kind, len(names))
	for i, name := range names {
		kind := richmark.Kind(name)
		if !kind.Valid() {
			return nil, richmark.Errorf(richmark.EINVALID, "unknown entity kind %q", name)
		}
		kinds[i] = kind
	}
	return kinds, nil
}
