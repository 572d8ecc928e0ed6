package lazy

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PullBoth advances both sequences concurrently and returns one Take from
// each side, so a step's latency is that of the slower pull. The closures
// never return an error to the group: a failed side is reported through
// its Take, and the other side is still pulled to completion, so that two
// failures in the same step are both observed.
func PullBoth[A, B any](ctx context.Context, left Seq[A], right Seq[B]) (Take[A], Take[B]) {
	var (
		lt Take[A]
		rt Take[B]
		g  errgroup.Group
	)
	g.Go(func() error {
		lt = left(ctx)
		return nil
	})
	g.Go(func() error {
		rt = right(ctx)
		return nil
	})
	_ = g.Wait()
	return lt, rt
}
