package ogpeek_test

import (
	"testing"

	"github.com/fwojciec/ogpeek"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecord(t *testing.T) {
	t.Parallel()

	t.Run("lists required and set fields", func(t *testing.T) {
		t.Parallel()

		r, _ := ogpeek.Materialize(ogpeek.Bag{
			"og:type":        "website",
			"og:title":       "Home",
			"og:determiner":  "the",
			"og:description": "Welcome",
		})

		want := "generic {\n" +
			"\ttitle: Home\n" +
			"\timageUrl: \n" +
			"\turl: \n" +
			"\tdescription: Welcome\n" +
			"\tdeterminer: \"the\"\n" +
			"}"
		assert.Equal(t, want, ogpeek.FormatRecord(r))
	})

	t.Run("indents nested records", func(t *testing.T) {
		t.Parallel()

		r := ogpeek.NewArticle(ogpeek.Bag{
			"og:title":                  "Post",
			"og:article:author":         ogpeek.Bag{"og:profile:username": "jdoe"},
			"og:article:published_time": "2024-03-01",
		})

		want := "article {\n" +
			"\ttitle: Post\n" +
			"\timageUrl: \n" +
			"\turl: \n" +
			"\tpublishedTime: 2024-03-01\n" +
			"\tauthor:\n" +
			"\t\tprofile {\n" +
			"\t\t\ttitle: \n" +
			"\t\t\timageUrl: \n" +
			"\t\t\turl: \n" +
			"\t\t\tusername: jdoe\n" +
			"\t\t}\n" +
			"}"
		assert.Equal(t, want, ogpeek.FormatRecord(r))
	})

	t.Run("renders numbers without trailing zeros", func(t *testing.T) {
		t.Parallel()

		r := ogpeek.NewImage(ogpeek.Bag{"og:image": "a.png", "og:image:width": "300", "og:image:height": "150.5"})

		out := ogpeek.FormatRecord(r)

		assert.Contains(t, out, "\twidth: 300\n")
		assert.Contains(t, out, "\theight: 150.5\n")
	})

	t.Run("prints the media location apart from the page url", func(t *testing.T) {
		t.Parallel()

		r := ogpeek.NewMovie(ogpeek.Bag{"og:url": "http://example.com/rock", "og:video": "http://example.com/rock.mp4"})

		out := ogpeek.FormatRecord(r)

		assert.Contains(t, out, "\turl: http://example.com/rock\n")
		assert.Contains(t, out, "\tmediaUrl: http://example.com/rock.mp4\n")
	})
}

func TestFormatRecords(t *testing.T) {
	t.Parallel()

	records := ogpeek.MaterializeAll([]ogpeek.Bag{
		{"og:type": "video.movie", "og:title": "A"},
		{"og:type": "video.movie", "og:title": "B"},
	})

	out := ogpeek.FormatRecords(records)

	assert.Contains(t, out, "title: A\n")
	assert.Contains(t, out, "}\n\nvideo.movie {\n")
}
