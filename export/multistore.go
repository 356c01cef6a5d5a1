package export

import (
	"context"
	"errors"

	"github.com/dexter-zone/nftmeta"
	"golang.org/x/sync/errgroup"
)

var _ nftmeta.FrameStore = (MultiStore)(nil)

// MultiStore fans frame records out to several stores, for example the
// JSON output directory and the export history database.
type MultiStore []nftmeta.FrameStore

// Save saves the frame to every store concurrently and returns the first error.
func (m MultiStore) Save(ctx context.Context, frame *nftmeta.FrameRecord) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range m {
		g.Go(func() error {
			return s.Save(ctx, frame)
		})
	}
	return g.Wait()
}

// Commit commits the stores in order, stopping at the first failure.
// Stores after the failing one are aborted.
func (m MultiStore) Commit() error {
	for i, s := range m {
		if err := s.Commit(); err != nil {
			errs := []error{err}
			for _, rest := range m[i+1:] {
				errs = append(errs, rest.Abort())
			}
			return errors.Join(errs...)
		}
	}
	return nil
}

// Abort aborts every store and joins their errors.
func (m MultiStore) Abort() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Abort())
	}
	return errors.Join(errs...)
}
