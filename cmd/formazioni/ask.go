package main

import (
	"fmt"

	"github.com/fwojciec/formazioni"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if err := buildIfNeeded(deps); err != nil {
		return err
	}

	answer, err := deps.Assistant.Ask(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", formazioni.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

// buildIfNeeded rebuilds the in-memory index before answering. It is a no-op
// when a persistent Qdrant index is configured.
func buildIfNeeded(deps *Dependencies) error {
	if deps.Builder == nil {
		return nil
	}
	if _, err := deps.Builder.Build(deps.Ctx); err != nil {
		if formazioni.ErrorCode(err) == formazioni.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No knowledge base found. Run 'formazioni scrape' first.")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", formazioni.ErrorMessage(err))
		return err
	}
	return nil
}
