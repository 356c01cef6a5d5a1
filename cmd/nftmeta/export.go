package main

import (
	"errors"
	"fmt"

	"github.com/dexter-zone/nftmeta"
	"github.com/dexter-zone/nftmeta/export"
	"github.com/dexter-zone/nftmeta/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exporter := &export.Exporter{
		Fetcher:   deps.Fetcher,
		Store:     deps.Store,
		Extractor: nftmeta.NewTraitExtractor(c.Placeholder),
	}

	progress := func(frame *nftmeta.FrameRecord) {
		fmt.Fprintf(deps.Stdout, "Data for frames %d on Page %d dumped to %s.\n",
			frame.FrameID, c.Page, fs.FrameFilename(frame.FrameID))
	}

	result, err := exporter.Export(deps.Ctx, deps.FileKey, c.Page, progress)
	if err != nil {
		reportError(deps, err)
		return reported(err)
	}

	if len(result.Frames) == 0 {
		fmt.Fprintln(deps.Stdout, "No frames found on the specified page.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Exported %d frames from %q to %s\n", len(result.Frames), result.PageName, c.Out)
	return nil
}

// reportError prints a user-facing description of an export failure.
func reportError(deps *Dependencies, err error) {
	var fe *nftmeta.FetchError
	switch {
	case errors.As(err, &fe):
		fmt.Fprintln(deps.Stderr, "Error:", fe.StatusCode)
		if fe.Body != "" {
			fmt.Fprintln(deps.Stderr, fe.Body)
		}
	case nftmeta.ErrorCode(err) == nftmeta.ENOTFOUND:
		fmt.Fprintln(deps.Stderr, "Error: Page not found in the Figma file.")
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", nftmeta.ErrorMessage(err))
	}
}
