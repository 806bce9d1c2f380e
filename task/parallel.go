package task

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sequence runs tasks one after another and stops at the first failure.
//
// Example:
//
//	both := Sequence([]Task[string]{loadPrimary, loadReplica})
func Sequence[T any](tasks []Task[T]) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		values := make([]T, 0, len(tasks))
		for _, t := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			val, err := t(ctx)
			if err != nil {
				return nil, err
			}
			values = append(values, val)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return values, nil
	}
}

// SequencePar runs all tasks concurrently. See TraverseParN.
func SequencePar[T any](tasks []Task[T]) Task[[]T] {
	return TraverseParN(tasks, len(tasks), func(t Task[T]) Task[T] {
		return t
	})
}

// TraversePar runs fn for every item concurrently. See TraverseParN.
//
// Example:
//
//	users := TraversePar(ids, loadUser)
func TraversePar[A any, B any](items []A, fn func(A) Task[B]) Task[[]B] {
	return TraverseParN(items, len(items), fn)
}

// TraverseParN runs fn for every item with at most n tasks in flight. The
// first failure cancels the context handed to the remaining tasks and is the
// error reported. Output order matches input order.
//
// Example:
//
//	bodies := TraverseParN(urls, 4, func(url string) Task[string] {
//		return fetchText(url)
//	})
func TraverseParN[A any, B any](items []A, n int, fn func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return []B{}, nil
		}
		results := make([]B, len(items))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(clampParallelism(len(items), n))
		for idx, item := range items {
			if gctx.Err() != nil {
				break
			}
			idx, item := idx, item
			g.Go(func() error {
				val, err := fn(item)(gctx)
				if err != nil {
					return err
				}
				results[idx] = val
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}
}

func clampParallelism(total, requested int) int {
	if requested <= 0 {
		return 1
	}
	return min(requested, total)
}
