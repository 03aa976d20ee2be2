package domain

import (
	"net/url"
	"strings"
)

// Cookie is one Set-Cookie observed by the login session, keyed by the
// domain it was stored under.
type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
}

// cookieDomainPreference resolves same-name cookies stored under several
// domains. Unlisted domains fall back to the first candidate.
var cookieDomainPreference = []string{
	".bilibili.com",
	"bilibili.com",
	".passport.bilibili.com",
	"passport.bilibili.com",
}

func ResolveCookie(cookies []Cookie, name string) (string, bool) {
	candidates := make([]Cookie, 0, 2)
	for _, c := range cookies {
		if c.Name == name {
			candidates = append(candidates, c)
		}
	}

	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return candidates[0].Value, true
	}

	for _, domain := range cookieDomainPreference {
		for _, c := range candidates {
			if strings.EqualFold(strings.TrimSpace(c.Domain), domain) {
				return c.Value, true
			}
		}
	}

	return candidates[0].Value, true
}

// QueryValue returns the first value of the named query parameter, percent-decoded.
func QueryValue(rawURL, name string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	values, ok := parsed.Query()[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// ExtractCredential prefers the cookie jar, then the final URL, then the
// redirect URL, independently for each token.
func ExtractCredential(cookies []Cookie, finalURL, redirectURL string) Credential {
	return Credential{
		SessData: extractValue(cookies, SessDataCookie, finalURL, redirectURL),
		BiliJct:  extractValue(cookies, BiliJctCookie, finalURL, redirectURL),
	}
}

func extractValue(cookies []Cookie, name string, urls ...string) string {
	if value, ok := ResolveCookie(cookies, name); ok && value != "" {
		return value
	}
	for _, rawURL := range urls {
		if value, ok := QueryValue(rawURL, name); ok && value != "" {
			return value
		}
	}
	return ""
}

// SanitizeURL drops query and fragment so tokens never reach the logs.
func SanitizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	return parsed.Scheme + "://" + parsed.Host + path
}
