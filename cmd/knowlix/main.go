package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/zjregee/knowlix/fs"
	"github.com/zjregee/knowlix/gemini"
	"github.com/zjregee/knowlix/gen"
	"github.com/zjregee/knowlix/gotool"
	knowlixslog "github.com/zjregee/knowlix/slog"
	"github.com/zjregee/knowlix/sqlite"
	"github.com/zjregee/knowlix/yaml"
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
	// Database path. Set before calling Run().
	DBPath string

	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
// DBPath is left empty unless KNOWLIX_DB is set; the config supplies the
// default path otherwise.
func NewMain() *Main {
	return &Main{
		DBPath:     os.Getenv("KNOWLIX_DB"),
		ConfigPath: yaml.DefaultConfigPath(),
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
	cfg, err := yaml.LoadConfig(m.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if m.DBPath != "" {
		cfg.DBPath = m.DBPath
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Config: cfg,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("knowlix"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'knowlix --help' to see available commands")
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

	// Open database
	_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set KNOWLIX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	deps.DB = m.DB
	deps.Repos = sqlite.NewRepoService(m.DB)
	deps.Chunks = sqlite.NewChunkService(m.DB)

	// Commands that parse repositories share a generator wired with the
	// toolchain collaborators; gen additionally gets the describer, doc
	// store, and rate limiter below.
	if cmd == "add" || cmd == "scan" || cmd == "gen" {
		deps.Generator = &gen.Generator{
			Lister:      knowlixslog.NewLoggingLister(gotool.NewLister(), logger),
			Loader:      gotool.NewDocLoader(),
			Repos:       deps.Repos,
			Chunks:      deps.Chunks,
			Concurrency: cfg.Concurrency,
			RetryDelays: gen.DefaultRetryDelays(),
			Generator:   "knowlix",
			Model:       cfg.Model,
		}
	}

	if cmd == "gen" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		model := cfg.Model
		if cli.Gen.Model != "" {
			model = cli.Gen.Model
		}
		output := cfg.OutputDir
		if cli.Gen.Output != "" {
			output = cli.Gen.Output
		}
		timeoutSeconds := cfg.TimeoutSeconds
		if cli.Gen.Timeout > 0 {
			timeoutSeconds = cli.Gen.Timeout
		}
		if cli.Gen.Concurrency > 0 {
			deps.Generator.Concurrency = cli.Gen.Concurrency
		}

		deps.Generator.Describer = &timeoutDescriber{
			next:    knowlixslog.NewLoggingDescriber(gemini.NewDescriber(client, model), logger),
			timeout: time.Duration(timeoutSeconds) * time.Second,
		}
		deps.Generator.Store = fs.NewDocStore(output)
		deps.Generator.Limiter = gen.NewLimiter(cfg.RequestsPerSecond)
		deps.Generator.Model = model
	}

	return kongCtx.Run(deps)
}
