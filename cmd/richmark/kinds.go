package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pwalkowski/richmark"
)

// Run executes the kinds command.
func (c *KindsCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	if cfg == nil {
		cfg = richmark.DefaultConfig()
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tBASE ID\tINPUT")
	for _, kind := range richmark.Kinds() {
		baseID := cfg.BaseID(kind)
		if baseID == "" {
			baseID = "-"
		}
		var input string
		switch kind.Args() {
		case richmark.ArgsSource:
			input = "source"
		case richmark.ArgsPath:
			input = "path"
		default:
			input = "source+path"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind, baseID, input)
	}
	return w.Flush()
}
