package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dexter-zone/nftmeta"
)

// Ensure LoggingFrameStore implements nftmeta.FrameStore.
var _ nftmeta.FrameStore = (*LoggingFrameStore)(nil)

// LoggingFrameStore wraps a FrameStore with debug logging.
type LoggingFrameStore struct {
	next   nftmeta.FrameStore
	logger *slog.Logger
}

// NewLoggingFrameStore creates a new LoggingFrameStore.
func NewLoggingFrameStore(next nftmeta.FrameStore, logger *slog.Logger) *LoggingFrameStore {
	return &LoggingFrameStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the frame.
func (s *LoggingFrameStore) Save(ctx context.Context, frame *nftmeta.FrameRecord) (err error) {
	defer func(begin time.Time) {
		if frame == nil {
			s.logger.Debug("save frame", "err", err)
			return
		}
		s.logger.Debug("save frame",
			"frame_id", frame.FrameID,
			"name", frame.Name,
			"traits", len(frame.Attributes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, frame)
}

// Commit delegates to the wrapped store.
func (s *LoggingFrameStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit frames", "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store.
func (s *LoggingFrameStore) Abort() (err error) {
	defer func() {
		s.logger.Info("abort frames", "err", err)
	}()
	return s.next.Abort()
}
