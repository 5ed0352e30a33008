package scraper

import (
	"context"
	"fmt"
	"log"
)

const defaultMaxRetries = 3

// Page is one live browser tab. It is exclusively owned by whoever holds the
// handle and must be closed on every exit path.
type Page interface {
	// Navigate issues navigation to the URL, bounded by the page deadline.
	Navigate(url string) error
	// WaitReady blocks until the document body exists, bounded by the same deadline.
	WaitReady() error
	// HTML returns the rendered markup of the current document.
	HTML() (string, error)
	// Location is the document address after redirects.
	Location() string
	// Close releases the tab.
	Close() error
}

// PageOpener opens fresh pages with the outbound request identity and the
// resource filter already installed.
type PageOpener interface {
	OpenPage(ctx context.Context) (Page, error)
}

// Navigator drives a page to readiness within a bounded retry budget. Each
// attempt gets a fresh page; a failed attempt closes its page before the next
// one starts, so no handle outlives the attempt that opened it.
type Navigator struct {
	maxRetries int
}

// NewNavigator builds a navigator. maxRetries values below 1 fall back to the
// default of 3.
func NewNavigator(maxRetries int) *Navigator {
	if maxRetries < 1 {
		maxRetries = defaultMaxRetries
	}
	return &Navigator{maxRetries: maxRetries}
}

// Navigate returns the page from the first attempt that reaches readiness.
// Ownership of the returned page moves to the caller. When the retry budget is
// exhausted it fails with a NavigationError carrying the last cause.
func (n *Navigator) Navigate(ctx context.Context, opener PageOpener, url string) (Page, error) {
	var lastErr error

	for attempt := 1; attempt <= n.maxRetries; attempt++ {
		page, err := opener.OpenPage(ctx)
		if err != nil {
			lastErr = fmt.Errorf("open page: %w", err)
			continue
		}

		if err := navigateOnce(page, url); err != nil {
			lastErr = err
			if closeErr := page.Close(); closeErr != nil {
				log.Printf("scraper: close page after attempt %d of %d url=%s: %v", attempt, n.maxRetries, url, closeErr)
			}
			continue
		}

		return page, nil
	}

	return nil, &NavigationError{URL: url, Attempts: n.maxRetries, Err: lastErr}
}

func navigateOnce(page Page, url string) error {
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	if err := page.WaitReady(); err != nil {
		return fmt.Errorf("wait for document body: %w", err)
	}
	return nil
}
