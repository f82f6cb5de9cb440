package imagefetch

import (
	"context"
	"sync"

	"github.com/robinjoseph08/golib/logger"
	"golang.org/x/sync/errgroup"
)

// Prefetch resolves every distinct URL with at most concurrency fetches in
// flight. Page ordering comes from the assembled page sequence, not from
// completion order, so results land in a map keyed by URL and out-of-order
// completion is safe. Failed fetches are logged and left out of the result;
// the renderer substitutes placeholders for missing entries.
func Prefetch(ctx context.Context, fetcher Fetcher, urls []string, concurrency int) map[string]Image {
	log := logger.FromContext(ctx)

	if concurrency < 1 {
		concurrency = 1
	}

	distinct := make([]string, 0, len(urls))
	seen := map[string]bool{}
	for _, url := range urls {
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		distinct = append(distinct, url)
	}

	var mu sync.Mutex
	results := make(map[string]Image, len(distinct))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for _, url := range distinct {
		group.Go(func() error {
			img, err := fetcher.Fetch(ctx, url)
			if err != nil {
				// Non-fatal: the page renders with a placeholder.
				log.Err(err).Warn("image fetch failed", logger.Data{"url": url})
				return nil
			}
			mu.Lock()
			results[url] = img
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors, so this only waits.
	_ = group.Wait()

	return results
}
