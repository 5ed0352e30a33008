package scraper

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

const (
	defaultNavTimeout     = 60 * time.Second
	defaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	defaultAcceptLanguage = "en-US,en;q=0.9"
)

// Resource classes aborted before they hit the network. None of them affect
// the extracted fields, they only slow the page down.
var blockedResourceTypes = map[proto.NetworkResourceType]struct{}{
	proto.NetworkResourceTypeImage:      {},
	proto.NetworkResourceTypeStylesheet: {},
	proto.NetworkResourceTypeFont:       {},
	proto.NetworkResourceTypeMedia:      {},
}

// Browser is one headless browser process together with its page factory.
type Browser interface {
	PageOpener
	Close() error
}

// BrowserFactory launches browser processes. The orchestrator launches one per
// scrape and tears it down when the scrape finishes.
type BrowserFactory interface {
	Launch(ctx context.Context) (Browser, error)
}

// Options configure the rod-backed browser stack. Zero values fall back to
// defaults; Headless should normally be true outside local debugging.
type Options struct {
	Bin            string
	Headless       bool
	NoSandbox      bool
	NavTimeout     time.Duration
	UserAgent      string
	AcceptLanguage string
}

func (o Options) withDefaults() Options {
	if o.NavTimeout <= 0 {
		o.NavTimeout = defaultNavTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	if o.AcceptLanguage == "" {
		o.AcceptLanguage = defaultAcceptLanguage
	}
	return o
}

// RodFactory launches headless Chrome through rod's launcher.
type RodFactory struct {
	opts Options
}

// NewRodFactory builds a factory with defaults applied.
func NewRodFactory(opts Options) *RodFactory {
	return &RodFactory{opts: opts.withDefaults()}
}

// Launch starts a browser process and connects to it.
func (f *RodFactory) Launch(ctx context.Context) (Browser, error) {
	l := launcher.New().
		Headless(f.opts.Headless).
		NoSandbox(f.opts.NoSandbox)

	if f.opts.Bin != "" {
		l = l.Bin(f.opts.Bin)
	}

	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	return &rodBrowser{browser: browser, launcher: l, opts: f.opts}, nil
}

type rodBrowser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	opts     Options
}

// OpenPage creates a fresh tab with the outbound identity, stealth script and
// resource filter installed, all of which must happen before navigation.
func (b *rodBrowser) OpenPage(ctx context.Context) (Page, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	bound := page.Context(ctx)

	if err := bound.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      b.opts.UserAgent,
		AcceptLanguage: b.opts.AcceptLanguage,
	}); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("set user agent: %w", err)
	}

	if _, err := bound.EvalOnNewDocument(stealth.JS); err != nil {
		log.Printf("scraper: stealth injection failed, continuing without it: %v", err)
	}

	return &rodPage{page: page, bound: bound, router: blockResources(bound), timeout: b.opts.NavTimeout}, nil
}

// Close kills the browser process. Safe to call after a failed scrape.
func (b *rodBrowser) Close() error {
	err := b.browser.Close()
	b.launcher.Kill()
	if err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	return nil
}

// blockResources mounts a hijack router aborting heavyweight resource
// fetches. The router goroutine exits when the router is stopped on page close.
func blockResources(page *rod.Page) *rod.HijackRouter {
	router := page.HijackRequests()
	_ = router.Add("*", "", func(h *rod.Hijack) {
		if _, blocked := blockedResourceTypes[h.Request.Type()]; blocked {
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
		h.ContinueRequest(&proto.FetchContinueRequest{})
	})
	go router.Run()
	return router
}

type rodPage struct {
	page    *rod.Page
	bound   *rod.Page
	router  *rod.HijackRouter
	timeout time.Duration
}

// Navigate implements Page with the per-attempt deadline applied.
func (p *rodPage) Navigate(url string) error {
	return p.bound.Timeout(p.timeout).Navigate(url)
}

// WaitReady blocks until the document body exists.
func (p *rodPage) WaitReady() error {
	_, err := p.bound.Timeout(p.timeout).Element("body")
	return err
}

// HTML returns the rendered markup.
func (p *rodPage) HTML() (string, error) {
	return p.bound.Timeout(p.timeout).HTML()
}

// Location reports the document address after redirects, "" when unavailable.
func (p *rodPage) Location() string {
	info, err := p.bound.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Close stops the hijack router and releases the tab. Uses the original page
// handle so cleanup still works when the request context has expired.
func (p *rodPage) Close() error {
	if p.router != nil {
		_ = p.router.Stop()
	}
	return p.page.Close()
}
