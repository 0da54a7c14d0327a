package internal

import (
	"context"
	"fmt"

	"github.com/databricks/databricks-sdk-go/logger"
	"github.com/databrickslabs/sandbox/heavybag/counters"
	"github.com/databrickslabs/sandbox/heavybag/fileset"
	"github.com/databrickslabs/sandbox/heavybag/parallel"
)

// Tally counts the words of every file under dir that matches the configured
// pattern. Each file is counted into its own bag on a worker, and the bags
// are merged on the calling goroutine, so no bag is shared across goroutines.
func Tally(ctx context.Context, cfg *Config, dir string, progress chan<- string) (*counters.Bag[string], error) {
	all, err := fileset.RecursiveChildren(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	files, err := all.Filter(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Counting words in %d of %d files", len(files), len(all))
	ignored := cfg.ignored()
	perFile, err := parallel.Tasks(ctx, cfg.Workers, files, func(ctx context.Context, f fileset.File) (*counters.Bag[string], error) {
		if progress != nil {
			select {
			case progress <- f.Relative:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		bag := counters.New[string]()
		err := f.Words(cfg.Lower, func(word string) {
			if ignored.Contains(word) {
				return
			}
			bag.Add(word)
		})
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Relative, err)
		}
		logger.Tracef(ctx, "%s: %d words, %d distinct", f.Relative, bag.Len(), bag.DistinctLen())
		return bag, nil
	})
	if err != nil {
		return nil, err
	}
	total := counters.New[string]()
	for _, bag := range perFile {
		total.Merge(bag)
	}
	logger.Infof(ctx, "Counted %d words, %d distinct", total.Len(), total.DistinctLen())
	return total, nil
}
