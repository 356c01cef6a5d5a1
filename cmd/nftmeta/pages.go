package main

import (
	"fmt"

	"github.com/dexter-zone/nftmeta"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	file, err := deps.Fetcher.FetchFile(deps.Ctx, deps.FileKey)
	if err != nil {
		reportError(deps, err)
		return reported(err)
	}

	pages := file.Pages()
	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found in the Figma file.")
		return nil
	}

	for i, page := range pages {
		if page == nil {
			continue
		}
		frames := 0
		for _, child := range page.Children {
			if child != nil && child.Type == nftmeta.NodeTypeFrame {
				frames++
			}
		}
		fmt.Fprintf(deps.Stdout, "%d  %s  (%d frames)\n", i, page.Name, frames)
	}
	return nil
}
