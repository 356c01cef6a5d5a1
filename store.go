package nftmeta

import (
	"context"
	"time"
)

// FrameStore persists frame records with atomic semantics.
// Save stages a record; Commit makes all staged records permanent;
// Abort discards them.
type FrameStore interface {
	Save(ctx context.Context, frame *FrameRecord) error
	Commit() error
	Abort() error
}

// ExportedFrame is a frame record together with where and when it was exported.
type ExportedFrame struct {
	ID          string      `json:"id"`
	ExportID    string      `json:"exportId"`
	FileKey     string      `json:"fileKey"`
	PageIndex   int         `json:"pageIndex"`
	Frame       FrameRecord `json:"frame"`
	ContentHash string      `json:"contentHash"`
	ExportedAt  time.Time   `json:"exportedAt"`
}

// FrameFilter represents a filter for FindFrames.
type FrameFilter struct {
	FileKey  *string `json:"fileKey"`
	ExportID *string `json:"exportId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FrameHistory looks up previously exported frames.
type FrameHistory interface {
	// FindFrames returns exported frames matching the filter, newest
	// export first and by frame ID within an export.
	FindFrames(ctx context.Context, filter FrameFilter) ([]*ExportedFrame, error)
}
