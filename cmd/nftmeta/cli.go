package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/dexter-zone/nftmeta"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	FileKey string
	Fetcher nftmeta.Fetcher
	Store   nftmeta.FrameStore
	History nftmeta.FrameHistory
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	FileKey   string `name:"file-key" short:"k" default:"${file_key}" help:"Figma file key (env: FIGMA_FILE_KEY)"`
	Verbose   bool   `short:"v" help:"Log API calls and writes to stderr"`
	LogFormat string `default:"${log_format}" enum:"text,json" help:"Log format: text or json (env: NFTMETA_LOG_FORMAT)"`
	LogLevel  string `default:"${log_level}" help:"Log level (env: NFTMETA_LOG_LEVEL)"`

	Export  ExportCmd  `cmd:"" default:"withargs" help:"Write one JSON metadata file per frame (default)"`
	Preview PreviewCmd `cmd:"" help:"Print frame metadata without writing files"`
	Pages   PagesCmd   `cmd:"" help:"List the pages of the Figma file"`
	History HistoryCmd `cmd:"" help:"List previously exported frames"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Page        int      `short:"p" default:"${page}" help:"Zero-based page index (env: FIGMA_PAGE_INDEX)"`
	Out         string   `short:"o" default:"${out}" help:"Output directory (env: NFTMETA_OUTPUT_DIR)"`
	Placeholder []string `default:"${placeholders}" help:"Property values that mark a layer as having no trait (env: NFTMETA_PLACEHOLDERS)"`
	DB          string   `default:"${db}" help:"Also record the export in this SQLite database (env: NFTMETA_DB)"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Page        int      `short:"p" default:"${page}" help:"Zero-based page index (env: FIGMA_PAGE_INDEX)"`
	Placeholder []string `default:"${placeholders}" help:"Property values that mark a layer as having no trait (env: NFTMETA_PLACEHOLDERS)"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DB    string `default:"${db}" help:"SQLite export history database (env: NFTMETA_DB)"`
	All   bool   `short:"a" help:"Show exports of every file, not only the configured one"`
	Limit int    `short:"n" default:"50" help:"Maximum number of frames to show"`
}
