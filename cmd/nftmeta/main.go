package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/dexter-zone/nftmeta"
	"github.com/dexter-zone/nftmeta/export"
	"github.com/dexter-zone/nftmeta/fs"
	nftmetahttp "github.com/dexter-zone/nftmeta/http"
	"github.com/dexter-zone/nftmeta/internal/config"
	nftslog "github.com/dexter-zone/nftmeta/slog"
	"github.com/dexter-zone/nftmeta/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// ReportedError marks an error whose user-facing message a command has
// already written to stderr.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// reported wraps err so PrintError stays silent about it.
func reported(err error) error {
	return &ReportedError{Err: err}
}

// PrintError writes err to w unless a command already reported it.
func PrintError(w io.Writer, err error) {
	var re *ReportedError
	if err == nil || errors.As(err, &re) {
		return
	}
	fmt.Fprintln(w, err)
}

// Main represents the program.
type Main struct {
	// EnvFile is the .env file loaded before reading the environment.
	EnvFile string

	// Config overrides environment loading when set. Used by tests.
	Config *config.Config

	// DB is the export history database, opened when a command needs it.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
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
	cfg, err := m.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nftmeta"),
		kong.Description("Export NFT trait metadata from the frames of a Figma page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"file_key":     cfg.FileKey,
			"page":         strconv.Itoa(cfg.PageIndex),
			"out":          cfg.OutputDir,
			"placeholders": strings.Join(cfg.Placeholders, ","),
			"db":           cfg.DBPath,
			"log_format":   cfg.LogFormat,
			"log_level":    cfg.LogLevel,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose, cli.LogFormat, cli.LogLevel)
	deps.FileKey = cli.FileKey

	cmd := kongCtx.Command()
	if cmd == "export" || cmd == "preview" || cmd == "pages" {
		cfg.FileKey = cli.FileKey
		if err := cfg.Validate(); err != nil {
			return err
		}

		fetcher := nftmetahttp.NewFetcher(cfg.APIKey,
			nftmetahttp.WithBaseURL(cfg.APIURL),
			nftmetahttp.WithTimeout(cfg.Timeout),
			nftmetahttp.WithRateLimit(cfg.RateLimit),
		)
		deps.Fetcher = nftslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	dbPath := ""
	switch cmd {
	case "export":
		dbPath = cli.Export.DB
	case "history":
		dbPath = cli.History.DB
		if dbPath == "" {
			return nftmeta.Errorf(nftmeta.EINVALID, "no history database. Set NFTMETA_DB or pass --db")
		}
	}
	if dbPath != "" {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set NFTMETA_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.History = sqlite.NewFrameService(m.DB)
	}

	if cmd == "export" {
		var store nftmeta.FrameStore = fs.NewFrameStoreForDir(cli.Export.Out)
		if m.DB != nil {
			store = export.MultiStore{store, sqlite.NewFrameStore(m.DB, deps.FileKey, cli.Export.Page)}
		}
		deps.Store = nftslog.NewLoggingFrameStore(store, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) loadConfig() (config.Config, error) {
	if m.Config != nil {
		return *m.Config, nil
	}
	return config.Load(m.EnvFile)
}

// newLogger returns a logger writing to w, or a discarding logger when
// verbose output is off.
func newLogger(w io.Writer, verbose bool, format, level string) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
