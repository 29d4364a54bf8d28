package main

import (
	"fmt"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	var written, failed int
	for _, u := range c.URLs {
		res, err := deps.Previewer.Preview(deps.Ctx, u)
		if err != nil {
			if ctxErr := deps.Ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", u, errorText(err))
			continue
		}

		if written > 0 && !deps.JSON {
			fmt.Fprintln(deps.Stdout)
		}
		if err := writeResult(deps, res, c.Raw); err != nil {
			return err
		}
		written++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(c.URLs))
	}
	return nil
}
