// Package slog provides logging decorators for nftmeta services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dexter-zone/nftmeta"
)

// Ensure LoggingFetcher implements nftmeta.Fetcher.
var _ nftmeta.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   nftmeta.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next nftmeta.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchFile delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchFile(ctx context.Context, fileKey string) (file *nftmeta.File, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"file", fileKey,
			"pages", len(file.Pages()),
			"duration", time.Since(begin),
		}
		if file != nil {
			attrs = append(attrs, "version", file.Version)
		}
		if err != nil {
			f.logger.Error("fetch", append(attrs, "err", err)...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.FetchFile(ctx, fileKey)
}
