package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLDocument is a DomAccessor over a rendered HTML snapshot.
type HTMLDocument struct {
	doc      *goquery.Document
	location string
}

// NewHTMLDocument parses the rendered page markup. location is the final
// document address reported by the browser (post-redirect).
func NewHTMLDocument(html, location string) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}
	return &HTMLDocument{doc: doc, location: location}, nil
}

// Attr implements DomAccessor.
func (d *HTMLDocument) Attr(selector, name string) string {
	val, _ := d.doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(val)
}

// Text implements DomAccessor.
func (d *HTMLDocument) Text(selector string) string {
	return strings.TrimSpace(d.doc.Find(selector).First().Text())
}

// TextContaining implements DomAccessor.
func (d *HTMLDocument) TextContaining(selector, substr string) string {
	needle := strings.ToLower(substr)
	var found string
	d.doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if strings.Contains(strings.ToLower(text), needle) {
			found = text
			return false
		}
		return true
	})
	return found
}

// Location implements DomAccessor.
func (d *HTMLDocument) Location() string {
	return d.location
}
