// Package scraper renders a page in a headless browser and extracts the
// company fields from the result. A browser process is expensive and
// leak-prone, so the dominant rule here is that every browser and page handle
// is released on every exit path.
package scraper

import (
	"context"
	"fmt"
	"log"

	"github.com/leadfoundry/directory-api/internal/extract"
)

// Scraper runs the full pipeline for one URL: launch browser, navigate with
// retries, snapshot the rendered document, extract fields.
type Scraper struct {
	factory BrowserFactory
	nav     *Navigator
}

// New builds a scraper. maxRetries bounds the navigator's attempt budget.
func New(factory BrowserFactory, maxRetries int) *Scraper {
	return &Scraper{factory: factory, nav: NewNavigator(maxRetries)}
}

// Scrape renders the URL and returns the extracted fields. The browser
// launched for the run is torn down unconditionally, success or failure.
func (s *Scraper) Scrape(ctx context.Context, url string) (extract.Result, error) {
	browser, err := s.factory.Launch(ctx)
	if err != nil {
		return extract.Result{}, &ScrapeError{URL: url, Err: err}
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.Printf("scraper: browser teardown url=%s: %v", url, closeErr)
		}
	}()

	page, err := s.nav.Navigate(ctx, browser, url)
	if err != nil {
		return extract.Result{}, &ScrapeError{URL: url, Err: err}
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			log.Printf("scraper: page teardown url=%s: %v", url, closeErr)
		}
	}()

	html, err := page.HTML()
	if err != nil {
		return extract.Result{}, &ScrapeError{URL: url, Err: fmt.Errorf("read rendered html: %w", err)}
	}

	location := page.Location()
	if location == "" {
		location = url
	}

	dom, err := extract.NewHTMLDocument(html, location)
	if err != nil {
		return extract.Result{}, &ScrapeError{URL: url, Err: err}
	}

	return extract.Extract(dom), nil
}
