package preview

import (
	"context"

	"github.com/fwojciec/ogpeek/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs previewed at once by default.
const DefaultConcurrency = 10

// dedupFalsePositiveRate bounds how often a new URL is mistaken for a
// duplicate.
const dedupFalsePositiveRate = 0.001

// Batch previews many URLs concurrently.
type Batch struct {
	Previewer   *Previewer
	Concurrency int
}

// Item is the outcome for one submitted URL.
type Item struct {
	URL    string
	Result *Result
	Err    error
}

// Summary holds the outcome of a batch run. Items follow submission order
// with duplicates removed.
type Summary struct {
	Items   []Item
	Fetched int
	Cached  int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Result    *Result
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSkipped
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run previews urls, skipping URLs that normalize to one already submitted.
// Failures are recorded per item; Run itself fails only when ctx is done.
// The progress callback, if provided, is called from a single goroutine.
func (b *Batch) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Summary, error) {
	emit := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}

	var sum Summary
	// The filter answers most lookups; its hits are confirmed against the
	// exact set so a false positive never skips a new URL.
	seen := bloom.NewFilter(uint(len(urls)), dedupFalsePositiveRate)
	submitted := make(map[string]struct{}, len(urls))
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		key := bloom.Normalize(u)
		if seen.Seen(u) {
			if _, dup := submitted[key]; dup {
				sum.Skipped++
				emit(ProgressEvent{Type: ProgressSkipped, URL: u})
				continue
			}
		}
		submitted[key] = struct{}{}
		unique = append(unique, u)
	}

	total := len(unique)
	emit(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		pos int
		Item
	}
	results := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for i, u := range unique {
			g.Go(func() error {
				res, err := b.Previewer.Preview(gctx, u)
				results <- indexed{pos: i, Item: Item{URL: u, Result: res, Err: err}}
				return nil
			})
		}
		_ = g.Wait()
		close(results)
	}()

	sum.Items = make([]Item, total)
	n := 0
	for r := range results {
		n++
		sum.Items[r.pos] = r.Item

		switch {
		case r.Err != nil:
			sum.Failed++
			emit(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: r.URL, Error: r.Err})
			continue
		case r.Result.Cached:
			sum.Cached++
		default:
			sum.Fetched++
		}
		emit(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: r.URL, Result: r.Result})
	}

	emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return &sum, err
	}
	return &sum, nil
}
