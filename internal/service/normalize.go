package service

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/leadfoundry/directory-api/internal/extract"
)

const trackingPrefix = "utm_"

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

// Normalize cleans an extraction result before it is deduplicated and stored.
// Normalization is lossless: a non-empty field is never emptied, and any value
// that cannot be improved is kept as extracted.
func Normalize(res extract.Result) extract.Result {
	res.CompanyLogo = strings.TrimSpace(res.CompanyLogo)
	res.CompanyName = strings.TrimSpace(res.CompanyName)
	res.Description = strings.TrimSpace(res.Description)
	res.Address = strings.TrimSpace(res.Address)
	res.PhoneNumber = normalizePhone(res.PhoneNumber)
	res.EmailAddress = normalizeEmail(res.EmailAddress)
	res.WebsiteURL = normalizeWebsiteURL(res.WebsiteURL)
	res.FacebookLink = normalizeSocialLink(res.FacebookLink, "facebook.com")
	res.TwitterLink = normalizeSocialLink(res.TwitterLink, "twitter.com")
	res.LinkedInURL = normalizeSocialLink(res.LinkedInURL, "linkedin.com")
	res.YoutubeLink = normalizeSocialLink(res.YoutubeLink, "youtube.com")
	res.InstagramLink = normalizeSocialLink(res.InstagramLink, "instagram.com")
	return res
}

// normalizePhone formats the number to E.164 when it parses as a valid
// international number, otherwise keeps the raw tel: href value.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return raw
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func normalizeEmail(raw string) string {
	raw = strings.TrimSpace(raw)
	lowered := strings.ToLower(raw)
	if emailPattern.MatchString(lowered) {
		return lowered
	}
	return raw
}

// normalizeWebsiteURL strips tracking parameters from the final document
// address. The host must survive an IDNA lookup conversion; when it does not,
// the address is kept untouched rather than guessed at.
func normalizeWebsiteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	if _, err := idnaProfile.ToASCII(u.Hostname()); err != nil {
		return raw
	}
	stripTracking(u)
	return u.String()
}

// normalizeSocialLink canonicalizes a profile link whose host belongs to the
// expected platform: https scheme, no tracking parameters. Links pointing
// elsewhere (or unparseable ones) are kept as extracted.
func normalizeSocialLink(raw, platformDomain string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	u, err := sanitizeURL(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	if !hostMatchesDomain(u.Hostname(), platformDomain) {
		return strings.TrimSpace(raw)
	}
	stripTracking(u)
	return u.String()
}

func hostMatchesDomain(host, domain string) bool {
	host = strings.ToLower(strings.Trim(strings.TrimSpace(host), "."))
	if host == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func sanitizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, errors.New("invalid url")
	}
	u.Scheme = "https"
	return u, nil
}

func stripTracking(u *url.URL) {
	if u == nil {
		return
	}
	query := u.Query()
	changed := false
	for key := range query {
		if strings.HasPrefix(strings.ToLower(key), trackingPrefix) {
			query.Del(key)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
}
