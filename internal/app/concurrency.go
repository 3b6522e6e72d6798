package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// snapshotRead is one independent read behind an aggregate response. Each read
// opens its own store snapshot, so two reads may observe different commits.
type snapshotRead struct {
	name string
	run  func(ctx context.Context) error
}

// readConcurrently runs reads in parallel and returns the first failure,
// labelled with the read that produced it. The context handed to the other
// reads is canceled as soon as one fails.
func readConcurrently(ctx context.Context, reads ...snapshotRead) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, r := range reads {
		g.Go(func() error {
			if err := r.run(ctx); err != nil {
				return fmt.Errorf("%s: %w", r.name, err)
			}

			return nil
		})
	}

	return g.Wait()
}
