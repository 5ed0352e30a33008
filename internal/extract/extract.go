package extract

import "strings"

// DomAccessor exposes the typed DOM queries the extractor needs. Implementations
// wrap whatever automation backend rendered the page; the extractor itself never
// performs I/O.
type DomAccessor interface {
	// Attr returns the named attribute of the first element matching the
	// selector, or "" when there is no match or no such attribute.
	Attr(selector, name string) string
	// Text returns the trimmed text of the first element matching the selector.
	Text(selector string) string
	// TextContaining returns the trimmed text of the first element matching the
	// selector whose text contains substr, compared case-insensitively.
	TextContaining(selector, substr string) string
	// Location is the resolved document address after redirects.
	Location() string
}

// Result holds the fields extracted from one page. Every field is a plain
// string and degrades to "" when the page has no matching markup.
type Result struct {
	CompanyLogo   string
	CompanyName   string
	Description   string
	Address       string
	PhoneNumber   string
	EmailAddress  string
	WebsiteURL    string
	FacebookLink  string
	TwitterLink   string
	LinkedInURL   string
	YoutubeLink   string
	InstagramLink string
}

// Extract runs the fixed per-field rules against the document. Scraping
// arbitrary third-party pages gives no schema guarantee, so each rule is
// best-effort and misses independently.
func Extract(dom DomAccessor) Result {
	name := dom.Attr(`meta[property="og:site_name"]`, "content")
	if name == "" {
		name = dom.Text("title")
	}

	return Result{
		CompanyLogo:   dom.Attr(`link[rel*="icon"]`, "href"),
		CompanyName:   name,
		Description:   dom.Attr(`meta[name="description"]`, "content"),
		Address:       dom.TextContaining("p", "address"),
		PhoneNumber:   strings.TrimPrefix(dom.Attr(`a[href^="tel:"]`, "href"), "tel:"),
		EmailAddress:  strings.TrimPrefix(dom.Attr(`a[href^="mailto:"]`, "href"), "mailto:"),
		WebsiteURL:    dom.Location(),
		FacebookLink:  dom.Attr(`a[href*="facebook.com"]`, "href"),
		TwitterLink:   dom.Attr(`a[href*="twitter.com"]`, "href"),
		LinkedInURL:   dom.Attr(`a[href*="linkedin.com"]`, "href"),
		YoutubeLink:   dom.Attr(`a[href*="youtube.com"]`, "href"),
		InstagramLink: dom.Attr(`a[href*="instagram.com"]`, "href"),
	}
}
