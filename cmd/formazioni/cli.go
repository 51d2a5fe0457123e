package main

import (
	"context"
	"io"

	"github.com/fwojciec/formazioni"
	"github.com/fwojciec/formazioni/rag"
	"github.com/fwojciec/formazioni/scrape"
	"github.com/fwojciec/formazioni/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Archive   formazioni.ArchiveService
	Scraper   *scrape.Scraper
	Builder   *rag.Builder
	Assistant *rag.Assistant
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape predicted lineups and refresh the knowledge base"`
	Build   BuildCmd   `cmd:"" help:"Build the Qdrant vector index from the knowledge base"`
	Ask     AskCmd     `cmd:"" help:"Ask a one-shot question about predicted lineups"`
	Chat    ChatCmd    `cmd:"" help:"Start an interactive lineup chat"`
	Matches MatchesCmd `cmd:"" help:"List archived scrape runs and their entries"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Sky     string `default:"https://sport.sky.it/calcio/serie-a/probabili-formazioni" help:"Sky Sport predicted lineups URL"`
	Fanta   string `default:"https://www.fantacalcio.it/probabili-formazioni-serie-a" help:"Fantacalcio probable lineups URL"`
	Browser bool   `short:"b" help:"Fetch with a headless browser instead of plain HTTP"`
	Out     string `short:"o" help:"Knowledge-base file path (default: FORMAZIONI_KB or ~/.formazioni/lineups.json)"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	KB     string `help:"Knowledge-base file path"`
	Qdrant string `help:"Qdrant server address (host:port)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question about predicted lineups"`
	KB       string `help:"Knowledge-base file path"`
	Qdrant   string `help:"Qdrant server address (host:port)"`
	TopK     int    `default:"15" help:"How many lineup chunks to retrieve"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	KB     string `help:"Knowledge-base file path"`
	Qdrant string `help:"Qdrant server address (host:port)"`
	TopK   int    `default:"15" help:"How many lineup chunks to retrieve"`
}

// MatchesCmd is the "matches" subcommand.
type MatchesCmd struct {
	RunID string `name:"run" help:"Show the entries archived for a run ID"`
	Limit int    `default:"10" help:"How many runs to list"`
}
