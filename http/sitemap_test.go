package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/ogpeek"
	ogpeekhttp "github.com/fwojciec/ogpeek/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlset(locs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, loc := range locs {
		b.WriteString("<url><loc>" + loc + "</loc></url>")
	}
	b.WriteString("</urlset>")
	return b.String()
}

func sitemapIndex(locs ...string) string {
	var b strings.Builder
	b.WriteString(`<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, loc := range locs {
		b.WriteString("<sitemap><loc>" + loc + "</loc></sitemap>")
	}
	b.WriteString("</sitemapindex>")
	return b.String()
}

// siteServer serves path->body pairs. Bodies may reference the server URL
// as {{BASE}}.
func siteServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps declared in robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /private/\nsitemap: {{BASE}}/a.xml\nSitemap: {{BASE}}/b.xml\n",
			"/a.xml":      urlset("{{BASE}}/one"),
			"/b.xml":      urlset("{{BASE}}/two"),
		})

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/one", srv.URL + "/two"}, urls)
	})

	t.Run("falls back to /sitemap.xml", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/page"),
		})

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page"}, urls)
	})

	t.Run("follows sitemap indexes and drops duplicates", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{
			"/sitemap.xml":  sitemapIndex("{{BASE}}/posts.xml", "{{BASE}}/pages.xml", "{{BASE}}/posts.xml"),
			"/posts.xml":    urlset("{{BASE}}/posts/1", "{{BASE}}/posts/2"),
			"/pages.xml":    urlset("{{BASE}}/about", "{{BASE}}/posts/1"),
			"/unlisted.xml": urlset("{{BASE}}/hidden"),
		})

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/posts/1", srv.URL + "/posts/2", srv.URL + "/about"}, urls)
	})

	t.Run("stops at self-referencing indexes", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sitemap.xml" {
				http.NotFound(w, r)
				return
			}
			hits.Add(1)
			_, _ = w.Write([]byte(sitemapIndex(srv.URL + "/sitemap.xml")))
		}))
		t.Cleanup(srv.Close)

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.Equal(t, int32(2), hits.Load(), "one HEAD probe and one GET")
	})

	t.Run("accepts a sitemap URL directly", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{
			"/custom/map.xml": urlset("{{BASE}}/x"),
		})

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/custom/map.xml", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/x"}, urls)
	})

	t.Run("keeps only pages under the base path", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/blog", "{{BASE}}/blog/post", "{{BASE}}/blogroll", "{{BASE}}/about"),
		})

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/blog/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog", srv.URL + "/blog/post"}, urls)
	})

	t.Run("applies include and exclude patterns", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/posts/1", "{{BASE}}/posts/draft-2", "{{BASE}}/tags/go"),
		})
		filter := &ogpeek.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/posts/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`draft`)},
		}

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/posts/1"}, urls)
	})

	t.Run("returns empty list without sitemaps", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{})

		urls, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("rejects documents that are not sitemaps", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{
			"/sitemap.xml": `<rss><channel></channel></rss>`,
		})

		_, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		assert.Equal(t, ogpeek.EINVALID, ogpeek.ErrorCode(err))
	})

	t.Run("rejects relative base URLs", func(t *testing.T) {
		t.Parallel()

		_, err := ogpeekhttp.NewSitemapService(nil).DiscoverURLs(context.Background(), "/just/a/path", nil)

		assert.Equal(t, ogpeek.EINVALID, ogpeek.ErrorCode(err))
	})

	t.Run("returns context errors", func(t *testing.T) {
		t.Parallel()

		srv := siteServer(t, map[string]string{"/sitemap.xml": urlset("{{BASE}}/page")})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ogpeekhttp.NewSitemapService(srv.Client()).DiscoverURLs(ctx, srv.URL, nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}
