package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/formazioni"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formazioni.ErrorMessage(err))
		return err
	}

	// Stable warning order for scripted use.
	names := make([]string, 0, len(result.SourceErrors))
	for name := range result.SourceErrors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(deps.Stderr, "warning: %s failed: %s\n", name, result.SourceErrors[name])
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d matches (%d entries).\n", len(result.Reports), len(result.Entries))
	if result.Run != nil {
		fmt.Fprintf(deps.Stdout, "Archived run %s.\n", result.Run.ID)
	}
	return nil
}
