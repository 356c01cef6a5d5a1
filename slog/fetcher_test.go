package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/dexter-zone/nftmeta"
	"github.com/dexter-zone/nftmeta/mock"
	nftslog "github.com/dexter-zone/nftmeta/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_FetchFile(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with pages, version and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &nftmeta.File{
			Version: "99",
			Document: &nftmeta.Node{Children: []*nftmeta.Node{
				{Name: "Page 1", Type: nftmeta.NodeTypeCanvas},
				{Name: "Page 2", Type: nftmeta.NodeTypeCanvas},
			}},
		}
		inner := &mock.Fetcher{
			FetchFileFn: func(ctx context.Context, fileKey string) (*nftmeta.File, error) {
				return want, nil
			},
		}

		fetcher := nftslog.NewLoggingFetcher(inner, logger)
		file, err := fetcher.FetchFile(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Same(t, want, file)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "file=abc123")
		assert.Contains(t, output, "pages=2")
		assert.Contains(t, output, "version=99")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFileFn: func(ctx context.Context, fileKey string) (*nftmeta.File, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := nftslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.FetchFile(context.Background(), "abc123")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
