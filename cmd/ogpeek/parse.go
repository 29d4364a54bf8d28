package main

import (
	"fmt"
	"io"
	"os"

	ogphttp "github.com/fwojciec/ogpeek/http"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	in := deps.Stdin
	name := "stdin"
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		in, name = f, c.File
	}
	if c.URL != "" {
		name = c.URL
	}

	html, err := readHTML(in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: reading %s: %s\n", name, errorText(err))
		return err
	}

	res, err := deps.Previewer.PreviewHTML(name, html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	return writeResult(deps, res, c.Raw)
}

// readHTML reads a document and decodes it to UTF-8.
func readHTML(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return ogphttp.Decode(data, "")
}
