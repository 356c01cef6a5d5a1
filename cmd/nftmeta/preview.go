package main

import (
	"fmt"

	"github.com/dexter-zone/nftmeta"
	"github.com/dexter-zone/nftmeta/export"
	"github.com/dexter-zone/nftmeta/fs"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	exporter := &export.Exporter{
		Fetcher:   deps.Fetcher,
		Extractor: nftmeta.NewTraitExtractor(c.Placeholder),
	}

	result, err := exporter.Collect(deps.Ctx, deps.FileKey, c.Page)
	if err != nil {
		reportError(deps, err)
		return reported(err)
	}

	if len(result.Frames) == 0 {
		fmt.Fprintln(deps.Stdout, "No frames found on the specified page.")
		return nil
	}

	for _, frame := range result.Frames {
		content, err := fs.FormatFrame(frame)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "// %s\n%s\n", fs.FrameFilename(frame.FrameID), content)
	}
	return nil
}
