package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/preview"
)

// previewJSON is the JSON form of a preview written by fetch, parse, batch
// and list.
type previewJSON struct {
	ID        string       `json:"id,omitempty"`
	URL       string       `json:"url"`
	FetchedAt time.Time    `json:"fetchedAt"`
	Cached    bool         `json:"cached,omitempty"`
	Fallback  string       `json:"fallback,omitempty"`
	Partial   bool         `json:"partial,omitempty"`
	Records   []recordJSON `json:"records,omitempty"`
	Bags      []ogpeek.Bag `json:"bags,omitempty"`
}

type recordJSON struct {
	Kind   ogpeek.Kind   `json:"kind"`
	Record ogpeek.Record `json:"record"`
}

func newPreviewJSON(p *ogpeek.Preview, raw bool) previewJSON {
	out := previewJSON{
		ID:        p.ID,
		URL:       p.URL,
		FetchedAt: p.FetchedAt,
		Partial:   p.Partial,
	}
	if raw {
		out.Bags = p.Bags
		return out
	}
	for _, r := range p.Records() {
		out.Records = append(out.Records, recordJSON{Kind: r.Kind(), Record: r})
	}
	return out
}

// fallbackName names the extractor that produced res, or "" for the
// primary one.
func (deps *Dependencies) fallbackName(res *preview.Result) string {
	if res.Fallback <= 0 || res.Fallback > len(deps.Fallbacks) {
		return ""
	}
	return deps.Fallbacks[res.Fallback-1]
}

// writeResult prints one preview with its records, or its bags when raw.
func writeResult(deps *Dependencies, res *preview.Result, raw bool) error {
	p := res.Preview
	fallback := deps.fallbackName(res)

	if deps.JSON {
		out := newPreviewJSON(p, raw)
		out.Cached = res.Cached
		out.Fallback = fallback
		return json.NewEncoder(deps.Stdout).Encode(out)
	}

	var notes []string
	if res.Cached {
		notes = append(notes, "cached")
	}
	if fallback != "" {
		notes = append(notes, "fallback: "+fallback)
	}
	if p.Partial {
		notes = append(notes, "partial")
	}
	header := p.URL
	if len(notes) > 0 {
		header += " (" + strings.Join(notes, ", ") + ")"
	}
	fmt.Fprintln(deps.Stdout, header)

	if raw {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p.Bags)
	}

	records := res.Records()
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No Open Graph metadata found.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, ogpeek.FormatRecords(records))
	return nil
}

// headline returns the kind and title of the first record of p.
func headline(p *ogpeek.Preview) (string, string) {
	records := p.Records()
	if len(records) == 0 {
		return "-", ""
	}
	return string(records[0].Kind()), records[0].Common().Title
}

// errorText describes err for the user. Application errors carry a message
// meant for display; anything else is shown as is.
func errorText(err error) string {
	if ogpeek.ErrorCode(err) == ogpeek.EINTERNAL {
		return err.Error()
	}
	return ogpeek.ErrorMessage(err)
}
