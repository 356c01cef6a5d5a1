package mock

import (
	"context"

	"github.com/dexter-zone/nftmeta"
)

var _ nftmeta.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of nftmeta.Fetcher.
type Fetcher struct {
	FetchFileFn func(ctx context.Context, fileKey string) (*nftmeta.File, error)
}

func (f *Fetcher) FetchFile(ctx context.Context, fileKey string) (*nftmeta.File, error) {
	return f.FetchFileFn(ctx, fileKey)
}
