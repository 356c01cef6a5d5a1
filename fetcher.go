package nftmeta

import "context"

// Fetcher retrieves Figma files.
type Fetcher interface {
	// FetchFile downloads the document tree of the file identified by
	// fileKey. Non-success API responses are returned as *FetchError.
	// The context controls timeout and cancellation.
	FetchFile(ctx context.Context, fileKey string) (*File, error)
}
