package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel2 executes two functions concurrently and returns both results
// or the first error. The sibling call is canceled when either fails.
// Used where a page of rows and its total count come from independent
// queries, such as listing a user's quotes.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		first  T1
		second T2
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		first, err = fn1(ctx)
		return err
	})
	g.Go(func() (err error) {
		second, err = fn2(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)
		return zero1, zero2, fmt.Errorf("parallel execution failed: %w", err)
	}

	return first, second, nil
}
