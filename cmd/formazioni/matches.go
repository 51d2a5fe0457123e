package main

import (
	"fmt"

	"github.com/fwojciec/formazioni"
)

// Run executes the matches command.
func (c *MatchesCmd) Run(deps *Dependencies) error {
	if c.RunID != "" {
		return c.printEntries(deps)
	}
	return c.printRuns(deps)
}

func (c *MatchesCmd) printRuns(deps *Dependencies) error {
	runs, err := deps.Archive.FindRuns(deps.Ctx, formazioni.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formazioni.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No scrape runs archived yet. Use 'formazioni scrape' to create one.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d matches  %d entries\n",
			run.ID, run.RanAt.Format("2006-01-02 15:04"), run.Matches, run.Entries)
	}
	return nil
}

func (c *MatchesCmd) printEntries(deps *Dependencies) error {
	entries, err := deps.Archive.FindEntries(deps.Ctx, formazioni.EntryFilter{RunID: &c.RunID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formazioni.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no entries archived for run %q\n", c.RunID)
		return formazioni.Errorf(formazioni.ENOTFOUND, "no entries archived for run %q", c.RunID)
	}

	match := ""
	for _, entry := range entries {
		if entry.Match != match {
			match = entry.Match
			fmt.Fprintf(deps.Stdout, "%s\n", match)
		}
		line := fmt.Sprintf("  %s: %s (%s)", entry.Team, entry.Player, entry.Role)
		if entry.Note != "" {
			line += " [" + entry.Note + "]"
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
