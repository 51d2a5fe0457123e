package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/formazioni"
	"github.com/fwojciec/formazioni/fs"
	"github.com/fwojciec/formazioni/gemini"
	"github.com/fwojciec/formazioni/goquery"
	formhttp "github.com/fwojciec/formazioni/http"
	"github.com/fwojciec/formazioni/memory"
	"github.com/fwojciec/formazioni/qdrant"
	"github.com/fwojciec/formazioni/rag"
	"github.com/fwojciec/formazioni/rod"
	"github.com/fwojciec/formazioni/scrape"
	fslog "github.com/fwojciec/formazioni/slog"
	"github.com/fwojciec/formazioni/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
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
	// Archive database path. Set before calling Run().
	DBPath string

	// Stdin feeds the interactive chat loop.
	Stdin io.Reader

	// SQLite database used by the archive service.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
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
	// Load .env if present; environment variables win over file values.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("formazioni"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'formazioni --help' to see available commands")
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

	// Open archive database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FORMAZIONI_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Archive = sqlite.NewArchiveService(m.DB)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	switch cmd {
	case "scrape":
		store := fs.NewStore(kbPath(cli.Scrape.Out))

		var fetcher formazioni.Fetcher
		if cli.Scrape.Browser {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = formhttp.NewFetcher()
		}
		fetcher = fslog.NewLoggingFetcher(fetcher, logger)
		defer fetcher.Close()

		deps.Scraper = scrape.NewScraper(fetcher, store,
			scrape.Target{Source: goquery.NewSkySportSource(), URL: cli.Scrape.Sky},
			[]scrape.Target{{Source: goquery.NewFantacalcioSource(), URL: cli.Scrape.Fanta}},
			scrape.WithArchive(deps.Archive),
			scrape.WithLogger(func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			}),
		)

	case "build", "ask", "chat":
		client, err := geminiClient(ctx, stderr)
		if err != nil {
			return err
		}

		var kb, qdrantAddr string
		topK := rag.DefaultTopK
		switch cmd {
		case "build":
			kb, qdrantAddr = cli.Build.KB, cli.Build.Qdrant
		case "ask":
			kb, qdrantAddr, topK = cli.Ask.KB, cli.Ask.Qdrant, cli.Ask.TopK
		case "chat":
			kb, qdrantAddr, topK = cli.Chat.KB, cli.Chat.Qdrant, cli.Chat.TopK
		}
		if qdrantAddr == "" {
			qdrantAddr = os.Getenv("QDRANT_ADDR")
		}

		embedder := fslog.NewLoggingEmbedder(gemini.NewEmbedder(client, ""), logger)
		store := fs.NewStore(kbPath(kb))

		var index formazioni.VectorIndex
		persistent := qdrantAddr != ""
		if persistent {
			host, port, err := parseQdrantAddr(qdrantAddr)
			if err != nil {
				return err
			}
			qc, err := qdrant.Connect(host, port)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check that the Qdrant server is running")
				return fmt.Errorf("failed to connect to Qdrant at %q: %w", qdrantAddr, err)
			}
			index = qdrant.NewIndex(qc, "")
		} else {
			index = memory.NewIndex()
		}
		index = fslog.NewLoggingIndex(index, logger)
		defer index.Close()

		if cmd == "build" && !persistent {
			return formazioni.Errorf(formazioni.EINVALID,
				"build requires a Qdrant server (--qdrant or QDRANT_ADDR); the in-memory index is built by ask and chat")
		}

		// The in-memory index lives only for this process, so ask and chat
		// rebuild it before answering. A Qdrant index persists across
		// invocations and is reused as-is, so those paths skip the builder
		// (and the local tokenizer it loads).
		if cmd == "build" || !persistent {
			counter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.Builder = rag.NewBuilder(store, embedder, index,
				rag.WithTokenCounter(counter),
				rag.WithRateLimiter(rate.NewLimiter(rate.Every(time.Second), 1)),
			)
		}

		if cmd != "build" {
			retriever := rag.NewRetriever(embedder, index, rag.WithTopK(topK))
			deps.Assistant = rag.NewAssistant(retriever, gemini.NewGenerator(client, ""))
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting during knowledge-base builds.
const tokenizerModel = "gemini-2.5-flash"

func geminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

// parseQdrantAddr splits a host:port address. A bare host defaults to the
// Qdrant gRPC port 6334.
func parseQdrantAddr(addr string) (string, int, error) {
	host, portStr, found := strings.Cut(addr, ":")
	if !found {
		return addr, 6334, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, formazioni.Errorf(formazioni.EINVALID, "invalid Qdrant address %q", addr)
	}
	return host, port, nil
}

func defaultDBPath() string {
	if path := os.Getenv("FORMAZIONI_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "formazioni.db"
	}
	dir := filepath.Join(home, ".formazioni")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "formazioni.db")
}

// kbPath resolves the knowledge-base file path: explicit flag, then the
// FORMAZIONI_KB environment variable, then the default next to the database.
func kbPath(flag string) string {
	if flag != "" {
		return flag
	}
	if path := os.Getenv("FORMAZIONI_KB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lineups.json"
	}
	return filepath.Join(home, ".formazioni", "lineups.json")
}
