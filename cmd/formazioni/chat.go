package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/formazioni"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	if err := buildIfNeeded(deps); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, "Ask about Serie A predicted lineups. Type 'exit' or 'quit' to leave.")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		answer, err := deps.Assistant.Ask(deps.Ctx, question)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", formazioni.ErrorMessage(err))
			continue
		}
		fmt.Fprintln(deps.Stdout, answer)
		fmt.Fprintln(deps.Stdout)
	}

	return scanner.Err()
}
