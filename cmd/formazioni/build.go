package main

import (
	"fmt"

	"github.com/fwojciec/formazioni"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		if formazioni.ErrorCode(err) == formazioni.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No knowledge base found. Run 'formazioni scrape' first.")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", formazioni.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d chunks (%d dimensions", result.Chunks, result.Dimensions)
	if result.Tokens > 0 {
		fmt.Fprintf(deps.Stdout, ", %d tokens", result.Tokens)
	}
	fmt.Fprintln(deps.Stdout, ").")
	return nil
}
