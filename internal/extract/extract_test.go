package extract

import "testing"

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Acme Widgets | Home</title>
  <meta property="og:site_name" content="Acme Widgets" />
  <meta name="description" content="Industrial widgets since 1962." />
  <link rel="shortcut icon" href="https://acme.example/favicon.ico" />
</head>
<body>
  <main><p>Welcome to Acme.</p></main>
  <footer>
    <p>Address: 12 Factory Lane, Springfield</p>
    <a href="tel:+14155552671">Call us</a>
    <a href="mailto:Info@Acme.example">Email us</a>
    <a href="https://www.facebook.com/acmewidgets">Facebook</a>
    <a href="https://twitter.com/acmewidgets">Twitter</a>
    <a href="https://www.linkedin.com/company/acme">LinkedIn</a>
    <a href="https://www.youtube.com/@acme">YouTube</a>
    <a href="https://www.instagram.com/acmewidgets">Instagram</a>
  </footer>
</body>
</html>`

func mustDocument(t *testing.T, html, location string) *HTMLDocument {
	t.Helper()
	doc, err := NewHTMLDocument(html, location)
	if err != nil {
		t.Fatalf("unexpected error parsing document: %v", err)
	}
	return doc
}

func TestExtract_AllFields(t *testing.T) {
	res := Extract(mustDocument(t, samplePage, "https://acme.example/"))

	want := Result{
		CompanyLogo:   "https://acme.example/favicon.ico",
		CompanyName:   "Acme Widgets",
		Description:   "Industrial widgets since 1962.",
		Address:       "Address: 12 Factory Lane, Springfield",
		PhoneNumber:   "+14155552671",
		EmailAddress:  "Info@Acme.example",
		WebsiteURL:    "https://acme.example/",
		FacebookLink:  "https://www.facebook.com/acmewidgets",
		TwitterLink:   "https://twitter.com/acmewidgets",
		LinkedInURL:   "https://www.linkedin.com/company/acme",
		YoutubeLink:   "https://www.youtube.com/@acme",
		InstagramLink: "https://www.instagram.com/acmewidgets",
	}
	if res != want {
		t.Fatalf("unexpected result:\n got %+v\nwant %+v", res, want)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	res := Extract(mustDocument(t, "<html><head></head><body></body></html>", "https://bare.example/"))

	if res != (Result{WebsiteURL: "https://bare.example/"}) {
		t.Fatalf("expected every field empty except website url, got %+v", res)
	}
}

func TestExtract_CompanyNameFallsBackToTitle(t *testing.T) {
	html := `<html><head><title>  Plain Title Co  </title></head><body></body></html>`
	res := Extract(mustDocument(t, html, "https://plain.example/"))

	if res.CompanyName != "Plain Title Co" {
		t.Fatalf("expected trimmed title fallback, got %q", res.CompanyName)
	}
}

func TestExtract_AddressMatchIsCaseInsensitive(t *testing.T) {
	html := `<html><body>
      <p>Nothing here</p>
      <p>  Our ADDRESS is 1 Main St  </p>
      <p>Address: second match should lose</p>
    </body></html>`
	res := Extract(mustDocument(t, html, "https://addr.example/"))

	if res.Address != "Our ADDRESS is 1 Main St" {
		t.Fatalf("unexpected address: %q", res.Address)
	}
}

func TestExtract_FirstSocialMatchWins(t *testing.T) {
	html := `<html><body>
      <a href="https://facebook.com/first">one</a>
      <a href="https://facebook.com/second">two</a>
    </body></html>`
	res := Extract(mustDocument(t, html, "https://social.example/"))

	if res.FacebookLink != "https://facebook.com/first" {
		t.Fatalf("expected first anchor to win, got %q", res.FacebookLink)
	}
}

func TestExtract_SchemePrefixesStripped(t *testing.T) {
	html := `<html><body>
      <a href="tel:+441234567890">phone</a>
      <a href="mailto:sales@example.co.uk">mail</a>
    </body></html>`
	res := Extract(mustDocument(t, html, "https://contact.example/"))

	if res.PhoneNumber != "+441234567890" {
		t.Fatalf("expected tel: prefix stripped, got %q", res.PhoneNumber)
	}
	if res.EmailAddress != "sales@example.co.uk" {
		t.Fatalf("expected mailto: prefix stripped, got %q", res.EmailAddress)
	}
}
