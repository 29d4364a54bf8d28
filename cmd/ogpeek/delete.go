package main

import (
	"fmt"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/bloom"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	p, err := deps.Previews.FindPreviewByURL(deps.Ctx, bloom.Normalize(c.URL))
	if ogpeek.ErrorCode(err) == ogpeek.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: no cached preview for %q. Use 'ogpeek list' to see cached previews.\n", c.URL)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if err := deps.Previews.DeletePreview(deps.Ctx, p.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted preview for %s\n", p.URL)
	return nil
}
