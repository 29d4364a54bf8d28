// Package rod provides a Chrome-backed implementation of ogpeek.Fetcher for
// pages that inject their Open Graph tags with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/ogpeek"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation and load of a single page.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPages is the default number of pages before browser recycling.
// Chrome's baseline memory grows under load even with pages closed.
const DefaultMaxPages = 75

// Ensure Fetcher implements ogpeek.Fetcher at compile time.
var _ ogpeek.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using a headless Chrome browser,
// relaunching the browser every maxPages pages.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout   time.Duration
	maxPages  int
	userAgent string

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are rendered before the browser is
// relaunched.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxPages = n
		}
	}
}

// WithUserAgent overrides the browser's User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the HTML after the load event.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.acquire()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}
	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	return page.HTML()
}

// acquire returns the browser to render the next page on, relaunching it
// once maxPages pages have been served.
func (f *Fetcher) acquire() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed.Load() || f.browser == nil {
		return nil, ogpeek.Errorf(ogpeek.EINVALID, "browser fetcher closed")
	}
	if f.pages >= f.maxPages {
		f.recycle()
	}
	f.pages++
	return f.browser, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return nil
}

// shutdown must be called with mu held.
func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// recycle replaces the browser, keeping the old one if the relaunch fails.
// Must be called with mu held.
func (f *Fetcher) recycle() {
	oldBrowser, oldLauncher := f.browser, f.launcher
	if err := f.launch(); err != nil {
		f.browser, f.launcher = oldBrowser, oldLauncher
		return
	}
	_ = oldBrowser.Close()
	oldLauncher.Kill()
	f.pages = 0
}
