package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/ogpeek"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	previews, err := deps.Previews.FindPreviews(deps.Ctx, ogpeek.PreviewFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if deps.JSON {
		enc := json.NewEncoder(deps.Stdout)
		for _, p := range previews {
			if err := enc.Encode(newPreviewJSON(p, false)); err != nil {
				return err
			}
		}
		return nil
	}

	if len(previews) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached previews. Use 'ogpeek fetch' to create one.")
		return nil
	}

	for _, p := range previews {
		kind, title := headline(p)
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			p.ID, p.FetchedAt.Local().Format(time.DateTime), p.URL, kind, title)
	}
	return nil
}
