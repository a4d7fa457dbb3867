package linalg

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// OrthonormalizeBatch runs GramSchmidt on independent sets concurrently, at
// most workers at a time (workers <= 0 means no limit). Each individual call
// stays sequential. The first failure cancels the remaining sets and is
// returned wrapped with the index of its set.
func OrthonormalizeBatch(ctx context.Context, sets []mat.CMatrix, workers int) ([]*mat.CDense, error) {
	results := make([]*mat.CDense, len(sets))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, set := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := GramSchmidt(set)
			if err != nil {
				return fmt.Errorf("set %d: %w", i, err)
			}
			results[i] = q
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
