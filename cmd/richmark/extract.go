package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pwalkowski/richmark"
)

// Run executes the extract command: extract the requested kinds from one
// page and print each JSON-LD document to stdout.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	kinds, err := parseKinds(c.Kinds)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richmark.ErrorMessage(err))
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("page not found: %s", c.File)
		}
		return err
	}

	results, err := deps.Extractor.Extract(deps.Ctx, richmark.ExtractRequest{
		Source: string(data),
		Path:   filepath.Base(c.File),
		Kinds:  kinds,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", richmark.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stderr, "No entities found.")
		return nil
	}

	for _, result := range results {
		fmt.Fprintf(deps.Stdout, "%s\n", result.JSONLD)
	}
	return nil
}
