// Package capture grabs the visible text of a job posting from a running
// browser session. It attaches to Chrome over the remote debugging port
// rather than launching a headless instance: postings render behind a
// logged-in session, so the user's own browser is the source of truth.
package capture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
)

// DefaultDebugPort is the Chrome remote debugging port the browser must be
// started with (--remote-debugging-port).
const DefaultDebugPort = 9222

// DefaultTimeout bounds one capture attempt.
const DefaultTimeout = 30 * time.Second

const jobURLPrefix = "https://www.linkedin.com/jobs"

// IsJobURL reports whether a tab URL shows a single job posting. Listing
// and search pages share the /jobs prefix but hold many postings, so they
// are excluded.
func IsJobURL(url string) bool {
	if !strings.HasPrefix(url, jobURLPrefix) {
		return false
	}
	return !strings.Contains(url, "/collections/") && !strings.Contains(url, "/search/")
}

// Page is one captured posting: the tab URL and the page content.
type Page struct {
	URL  string
	HTML string
	Text string
}

// Browser attaches to a running Chrome instance over the debugging
// protocol.
type Browser struct {
	debugURL string
	timeout  time.Duration
}

// NewBrowser returns a Browser that talks to Chrome on the given local
// debugging port.
func NewBrowser(port int, timeout time.Duration) *Browser {
	if port == 0 {
		port = DefaultDebugPort
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Browser{
		debugURL: fmt.Sprintf("ws://127.0.0.1:%d", port),
		timeout:  timeout,
	}
}

// CaptureJobTab finds the first open tab showing a job posting and returns
// its rendered HTML and flattened visible text.
func (b *Browser) CaptureJobTab(ctx context.Context) (*Page, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(ctx, b.debugURL)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	targets, err := chromedp.Targets(browserCtx)
	if err != nil {
		return nil, &Error{Message: "failed to list browser tabs", Cause: err}
	}

	info := pickJobTarget(targets)
	if info == nil {
		return nil, &NoJobTabError{Tabs: len(targets)}
	}

	tabCtx, cancelTab := chromedp.NewContext(browserCtx, chromedp.WithTargetID(info.TargetID))
	defer cancelTab()

	var html string
	err = chromedp.Run(tabCtx,
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, &Error{URL: info.URL, Message: "failed to read page content", Cause: err}
	}

	text, err := VisibleText(html)
	if err != nil {
		return nil, &Error{URL: info.URL, Message: "failed to flatten page text", Cause: err}
	}

	return &Page{URL: info.URL, HTML: html, Text: text}, nil
}

func pickJobTarget(targets []*target.Info) *target.Info {
	for _, info := range targets {
		if info.Type == "page" && IsJobURL(info.URL) {
			return info
		}
	}
	return nil
}
