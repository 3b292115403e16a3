package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// evaluateAll aplica fn a cada elemento con a lo sumo `workers` goroutines.
// results[i] corresponde a items[i]: el orden no depende del planificador.
// fn es CPU pura y no falla; solo la cancelación del contexto corta el lote.
func evaluateAll[T, R any](ctx context.Context, workers int, items []T, fn func(T) R) ([]R, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(items[i])
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
