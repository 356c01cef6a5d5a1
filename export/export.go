// Package export orchestrates trait metadata export: it fetches a Figma
// file, selects a page, extracts one record per frame and persists the
// records through a FrameStore.
package export

import (
	"context"
	"fmt"

	"github.com/dexter-zone/nftmeta"
)

// Exporter exports the frames of one Figma page.
type Exporter struct {
	Fetcher   nftmeta.Fetcher
	Store     nftmeta.FrameStore
	Extractor *nftmeta.TraitExtractor
}

// Result holds the outcome of an export.
type Result struct {
	FileName  string
	PageIndex int
	PageName  string
	Frames    []*nftmeta.FrameRecord
}

// ProgressFunc is called after each frame record has been saved.
type ProgressFunc func(frame *nftmeta.FrameRecord)

// Collect fetches the file and extracts the frame records of the page at
// pageIndex without persisting them. An empty Frames slice means the page
// has no frames. A missing page is reported as ENOTFOUND.
func (e *Exporter) Collect(ctx context.Context, fileKey string, pageIndex int) (*Result, error) {
	file, err := e.Fetcher.FetchFile(ctx, fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch figma file: %w", err)
	}

	page, err := file.Page(pageIndex)
	if err != nil {
		return nil, err
	}

	return &Result{
		FileName:  file.Name,
		PageIndex: pageIndex,
		PageName:  page.Name,
		Frames:    nftmeta.ExportPage(page, e.Extractor),
	}, nil
}

// Export collects the frame records of a page and saves them to the store.
// Records are committed only when every save succeeds; on any failure,
// including a missing page or an empty frame set, the store is aborted so
// no output is written.
func (e *Exporter) Export(ctx context.Context, fileKey string, pageIndex int, progress ProgressFunc) (*Result, error) {
	result, err := e.Collect(ctx, fileKey, pageIndex)
	if err != nil {
		_ = e.Store.Abort()
		return nil, err
	}

	if len(result.Frames) == 0 {
		return result, e.Store.Abort()
	}

	for _, frame := range result.Frames {
		if err := e.Store.Save(ctx, frame); err != nil {
			_ = e.Store.Abort()
			return nil, fmt.Errorf("save frame %d: %w", frame.FrameID, err)
		}
		if progress != nil {
			progress(frame)
		}
	}

	if err := e.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit frames: %w", err)
	}

	return result, nil
}
