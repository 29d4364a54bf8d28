package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/preview"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := c.collect(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "No URLs to preview.")
		return nil
	}

	progress := func(event preview.ProgressEvent) {
		switch event.Type {
		case preview.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Previewing %d URLs\n", event.Total)
		case preview.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: duplicate\n", event.URL)
		case preview.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", event.URL, errorText(event.Error))
		}
	}

	b := &preview.Batch{Previewer: deps.Previewer, Concurrency: c.Concurrency}
	sum, err := b.Run(deps.Ctx, urls, progress)
	if sum != nil {
		if werr := writeItems(deps, sum.Items); werr != nil {
			return werr
		}
		fmt.Fprintf(deps.Stderr, "Done: %d fetched, %d cached, %d skipped, %d failed\n",
			sum.Fetched, sum.Cached, sum.Skipped, sum.Failed)
	}
	return err
}

func writeItems(deps *Dependencies, items []preview.Item) error {
	enc := json.NewEncoder(deps.Stdout)
	for _, item := range items {
		if item.Err != nil {
			continue
		}
		if deps.JSON {
			out := newPreviewJSON(item.Result.Preview, false)
			out.Cached = item.Result.Cached
			out.Fallback = deps.fallbackName(item.Result)
			if err := enc.Encode(out); err != nil {
				return err
			}
			continue
		}
		kind, title := headline(item.Result.Preview)
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", item.URL, kind, title)
	}
	return nil
}

// collect gathers URLs from arguments, the URL file and the sitemap, in that
// order. Include and exclude patterns apply to every source.
func (c *BatchCmd) collect(deps *Dependencies) ([]string, error) {
	if len(c.URLs) == 0 && c.File == "" && c.Sitemap == "" {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "no URLs given: pass URLs, --file or --sitemap")
	}

	filter, err := compileFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, u := range c.URLs {
		if filter.Match(u) {
			urls = append(urls, u)
		}
	}

	if c.File != "" {
		fromFile, err := c.readFile(deps)
		if err != nil {
			return nil, err
		}
		for _, u := range fromFile {
			if filter.Match(u) {
				urls = append(urls, u)
			}
		}
	}

	if c.Sitemap != "" {
		found, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}
	return urls, nil
}

func (c *BatchCmd) readFile(deps *Dependencies) ([]string, error) {
	if c.File == "-" {
		return readURLs(deps.Stdin)
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readURLs(f)
}

// readURLs reads one URL per line, skipping blank lines and # comments.
func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, sc.Err()
}

func compileFilter(include, exclude []string) (*ogpeek.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	filter := &ogpeek.URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, ogpeek.Errorf(ogpeek.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, ogpeek.Errorf(ogpeek.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}
