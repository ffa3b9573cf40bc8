package x12

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DecodeBatch decodes independent inputs concurrently, one interchange per
// input, and returns them in input order. The first failure cancels the
// inputs not yet started. Use WithConcurrency to bound parallelism.
func DecodeBatch(ctx context.Context, inputs []string, opts ...ReadOption) ([]*Interchange, error) {
	cfg := newReadConfig(opts)
	out := make([]*Interchange, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.concurrency > 0 {
		g.SetLimit(cfg.concurrency)
	}
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ic, rest, err := decodeInterchange(input, cfg)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			if strings.TrimSpace(rest) != "" {
				return fmt.Errorf("input %d: %w: trailing data after IEA", i, ErrInvalidPayload)
			}
			out[i] = ic
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
