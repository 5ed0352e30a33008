package scraper

import "fmt"

// NavigationError reports that every navigation attempt for a URL failed.
type NavigationError struct {
	URL      string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

// Unwrap exposes the last attempt's cause.
func (e *NavigationError) Unwrap() error { return e.Err }

// ScrapeError wraps any failure inside a single scrape run so callers can map
// it to a server-error response without inspecting the stage it came from.
type ScrapeError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scrape %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ScrapeError) Unwrap() error { return e.Err }
