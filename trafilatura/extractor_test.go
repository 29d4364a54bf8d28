package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/ogpeek"
	"github.com/fwojciec/ogpeek/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paragraph = "<p>" + strings.Repeat("The harbour authority confirmed on Tuesday that the new ferry terminal will open next spring, ending years of delays. ", 4) + "</p>\n"

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("derives properties from page content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head>
<title>Ferry terminal to open in spring</title>
<meta name="description" content="The long-delayed terminal finally has a date.">
<meta name="author" content="Jane Doe">
</head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Ferry terminal to open in spring</h1>
` + strings.Repeat(paragraph, 5) + `
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, result.Bags, 1)
		bag := result.Bags[0]
		assert.Contains(t, bag["og:title"], "Ferry terminal")
		assert.Equal(t, "The long-delayed terminal finally has a date.", bag["og:description"])
		_, typed := bag.Type()
		assert.True(t, typed)

		records := result.Records()
		require.Len(t, records, 1)
		assert.Contains(t, records[0].Common().Title, "Ferry terminal")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")

		assert.Equal(t, ogpeek.EINVALID, ogpeek.ErrorCode(err))
	})
}
