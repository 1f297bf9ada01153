package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cdpdoc"
	"github.com/fwojciec/cdpdoc/fs"
	"github.com/fwojciec/cdpdoc/gemini"
	"github.com/fwojciec/cdpdoc/search"
	"github.com/fwojciec/cdpdoc/sentences"
	cdpslog "github.com/fwojciec/cdpdoc/slog"
	"github.com/fwojciec/cdpdoc/sqlite"
	"github.com/fwojciec/cdpdoc/subword"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); the --db flag overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// RunTUI runs an interactive program. Defaults to a full-screen Bubble
	// Tea program; tests replace it.
	RunTUI func(ctx context.Context, model tea.Model) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		RunTUI: runProgram,
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		RunTUI: m.RunTUI,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cdpdoc"),
		kong.Description("Answer Customer Data Platform how-to questions from local documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLLoader),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cdpdoc --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if err := cli.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger
	deps.Catalog = cdpdoc.DefaultCatalog()
	deps.Corpus = cdpslog.NewLoggingCorpusService(fs.NewCorpusStore(cli.DataDir), logger)

	// Commands that only touch the corpus or the catalog need no database.
	if cmd == "classify" || cmd == "import" || cmd == "status" {
		return kongCtx.Run(deps)
	}

	// Open database
	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CDPDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.History = sqlite.NewHistoryService(m.DB)

	if cmd == "ask" || cmd == "chat" {
		searcher, err := m.newSearcher(ctx, cli, logger, deps.Corpus, stderr)
		if err != nil {
			return err
		}
		deps.Searcher = searcher
	}

	return kongCtx.Run(deps)
}

// newSearcher wires the question answering pipeline for the selected
// embedding backend.
func (m *Main) newSearcher(ctx context.Context, cli *CLI, logger *slog.Logger, corpus cdpdoc.CorpusService, stderr io.Writer) (cdpdoc.Searcher, error) {
	embedder, err := m.newEmbedder(ctx, cli, stderr)
	if err != nil {
		return nil, err
	}
	embedder = cdpslog.NewLoggingEmbedder(embedder, logger)

	normalizer, err := sentences.NewNormalizer()
	if err != nil {
		return nil, err
	}

	vocab := cdpdoc.DefaultVocabulary()
	gate, err := search.NewGate(ctx, embedder, vocab, cli.Threshold)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", cdpdoc.ErrorMessage(err))
		return nil, fmt.Errorf("failed to prepare relevance gate: %w", err)
	}

	ranker := search.NewRanker(embedder)
	ranker.Candidates = cli.Candidates
	ranker.Limit = cli.Limit

	return cdpslog.NewLoggingSearcher(&search.Searcher{
		Gate:       gate,
		Corpus:     corpus,
		Normalizer: normalizer,
		Ranker:     ranker,
		Vocabulary: vocab,
	}, logger), nil
}

func (m *Main) newEmbedder(ctx context.Context, cli *CLI, stderr io.Writer) (cdpdoc.Embedder, error) {
	if cli.Embedder != embedderGemini {
		return subword.NewEmbedder(), nil
	}

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

	remote := gemini.NewEmbedder(client, cli.GeminiModel, gemini.DefaultRPS)
	cache := sqlite.NewEmbeddingCache(m.DB)
	return sqlite.NewCachedEmbedder(remote, cache, "gemini/"+remote.Model()), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runProgram(ctx context.Context, model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func defaultDBPath() string {
	if path := os.Getenv("CDPDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cdpdoc.db"
	}
	dir := filepath.Join(home, ".cdpdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cdpdoc.db")
}
