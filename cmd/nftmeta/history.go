package main

import (
	"fmt"

	"github.com/dexter-zone/nftmeta"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := nftmeta.FrameFilter{Limit: c.Limit}
	if !c.All && deps.FileKey != "" {
		filter.FileKey = &deps.FileKey
	}

	frames, err := deps.History.FindFrames(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nftmeta.ErrorMessage(err))
		return reported(err)
	}

	if len(frames) == 0 {
		fmt.Fprintln(deps.Stdout, "No exports recorded. Use 'nftmeta export --db' to record one.")
		return nil
	}

	for _, f := range frames {
		fmt.Fprintf(deps.Stdout, "%s  %s  page %d  frame %d  %s  %d traits  %s\n",
			f.ExportedAt.Format("2006-01-02 15:04:05"), f.FileKey, f.PageIndex,
			f.Frame.FrameID, f.Frame.Name, len(f.Frame.Attributes), f.ContentHash)
	}
	return nil
}
