package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dexter-zone/nftmeta"
	main "github.com/dexter-zone/nftmeta/cmd/nftmeta"
	"github.com/dexter-zone/nftmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists exported frames of the configured file", func(t *testing.T) {
		t.Parallel()

		var got nftmeta.FrameFilter
		history := &mock.FrameHistory{
			FindFramesFn: func(_ context.Context, filter nftmeta.FrameFilter) ([]*nftmeta.ExportedFrame, error) {
				got = filter
				return []*nftmeta.ExportedFrame{
					{
						FileKey:     "abc",
						PageIndex:   3,
						Frame:       nftmeta.FrameRecord{FrameID: 0, Name: "Creature #1", Attributes: []nftmeta.Trait{{TraitType: "Hat", Value: "Cap"}}},
						ContentHash: "00ff00ff00ff00ff",
						ExportedAt:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			FileKey: "abc",
			History: history,
		}

		cmd := &main.HistoryCmd{Limit: 10}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.FileKey)
		assert.Equal(t, "abc", *got.FileKey)
		assert.Equal(t, 10, got.Limit)

		output := stdout.String()
		assert.Contains(t, output, "2026-03-01 09:30:00")
		assert.Contains(t, output, "Creature #1")
		assert.Contains(t, output, "1 traits")
		assert.Contains(t, output, "00ff00ff00ff00ff")
	})

	t.Run("all ignores the file key", func(t *testing.T) {
		t.Parallel()

		history := &mock.FrameHistory{
			FindFramesFn: func(_ context.Context, filter nftmeta.FrameFilter) ([]*nftmeta.ExportedFrame, error) {
				assert.Nil(t, filter.FileKey)
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			FileKey: "abc",
			History: history,
		}

		err := (&main.HistoryCmd{All: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No exports recorded")
	})

	t.Run("reports query failures", func(t *testing.T) {
		t.Parallel()

		history := &mock.FrameHistory{
			FindFramesFn: func(_ context.Context, _ nftmeta.FrameFilter) ([]*nftmeta.ExportedFrame, error) {
				return nil, errors.New("database is locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			History: history,
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Internal error")
	})
}
