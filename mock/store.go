package mock

import (
	"context"

	"github.com/dexter-zone/nftmeta"
)

// Compile-time interface verification.
var (
	_ nftmeta.FrameStore   = (*FrameStore)(nil)
	_ nftmeta.FrameHistory = (*FrameHistory)(nil)
)

// FrameStore is a mock implementation of nftmeta.FrameStore.
type FrameStore struct {
	SaveFn   func(ctx context.Context, frame *nftmeta.FrameRecord) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *FrameStore) Save(ctx context.Context, frame *nftmeta.FrameRecord) error {
	return s.SaveFn(ctx, frame)
}

func (s *FrameStore) Commit() error {
	return s.CommitFn()
}

func (s *FrameStore) Abort() error {
	return s.AbortFn()
}

// FrameHistory is a mock implementation of nftmeta.FrameHistory.
type FrameHistory struct {
	FindFramesFn func(ctx context.Context, filter nftmeta.FrameFilter) ([]*nftmeta.ExportedFrame, error)
}

func (h *FrameHistory) FindFrames(ctx context.Context, filter nftmeta.FrameFilter) ([]*nftmeta.ExportedFrame, error) {
	return h.FindFramesFn(ctx, filter)
}
