package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/ogpeek"
)

// maxIndexDepth bounds how deeply nested sitemap indexes are followed.
const maxIndexDepth = 3

// Ensure SitemapService implements ogpeek.SitemapService.
var _ ogpeek.SitemapService = (*SitemapService)(nil)

// SitemapService lists site pages from sitemaps fetched over HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns the page URLs listed in the site's sitemaps, in
// sitemap order without duplicates. An empty slice means no sitemap was
// found.
//
// baseURL may point at a sitemap directly (any path ending in .xml). Otherwise
// the sitemaps are located from the site root, and when baseURL has a path
// only pages under that path are kept.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *ogpeek.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "invalid base URL %q", baseURL)
	}

	var roots []string
	var scope string
	if strings.HasSuffix(base.Path, ".xml") {
		roots = []string{base.String()}
	} else {
		scope = strings.TrimSuffix(base.Path, "/")
		roots, err = s.locate(ctx, base)
		if err != nil {
			return nil, err
		}
	}

	w := &walk{
		svc:     s,
		visited: make(map[string]bool),
		seen:    make(map[string]bool),
	}
	for _, root := range roots {
		if err := w.visit(ctx, root, 0); err != nil {
			return nil, err
		}
	}

	urls := make([]string, 0, len(w.urls))
	for _, u := range w.urls {
		if inScope(u, scope) && filter.Match(u) {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// inScope reports whether the URL's path equals scope or lies beneath it.
// /docs matches /docs and /docs/intro but not /documentation.
func inScope(rawURL, scope string) bool {
	if scope == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	p := strings.TrimSuffix(u.Path, "/")
	return p == scope || strings.HasPrefix(p, scope+"/")
}

// locate returns the sitemaps declared in robots.txt, or /sitemap.xml when
// robots.txt declares none and that file exists.
func (s *SitemapService) locate(ctx context.Context, base *url.URL) ([]string, error) {
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.get(ctx, robots); err == nil {
		declared, err := sitemapDirectives(body)
		body.Close()
		if err == nil && len(declared) > 0 {
			return declared, nil
		}
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, fallback, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	return []string{fallback}, nil
}

// sitemapDirectives reads the Sitemap: lines of a robots.txt file.
func sitemapDirectives(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		field, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(field), "sitemap") {
			continue
		}
		if v := strings.TrimSpace(value); v != "" {
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return out, nil
}

// walk collects page URLs across a tree of sitemaps.
type walk struct {
	svc     *SitemapService
	visited map[string]bool // sitemaps
	seen    map[string]bool // page URLs
	urls    []string
}

func (w *walk) visit(ctx context.Context, sitemapURL string, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[sitemapURL] || depth > maxIndexDepth {
		return nil
	}
	w.visited[sitemapURL] = true

	body, err := w.svc.get(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return ogpeek.Errorf(ogpeek.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return ogpeek.Errorf(ogpeek.EINVALID, "empty sitemap %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		for _, loc := range locs(root, "sitemap") {
			if err := w.visit(ctx, loc, depth+1); err != nil {
				return err
			}
		}
	case "urlset":
		for _, loc := range locs(root, "url") {
			if !w.seen[loc] {
				w.seen[loc] = true
				w.urls = append(w.urls, loc)
			}
		}
	default:
		return ogpeek.Errorf(ogpeek.EINVALID, "unexpected <%s> root in sitemap %s", root.Tag, sitemapURL)
	}
	return nil
}

// locs returns the non-empty <loc> values of root's entry children.
func locs(root *etree.Element, entry string) []string {
	var out []string
	for _, el := range root.SelectElements(entry) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// get fetches a URL and returns the response body on 200 OK.
func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}
