package httpclient

import (
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"golang.org/x/net/publicsuffix"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/134.0.0.0 Safari/537.36"
	defaultReferer   = "https://www.bilibili.com"

	ProxyAuto = "auto"
	ProxyNone = "no"
)

type Options struct {
	// Proxy is "auto" (environment), "no", or an http/https/socks5/socks5h URL.
	Proxy     string
	Timeout   time.Duration
	UserAgent string
	Referer   string
}

// Session is the HTTP client for a single login attempt together with the
// jar that records every cookie it receives.
type Session struct {
	Client *http.Client
	Jar    *RecordingJar
}

func NewSession(opts Options) (*Session, error) {
	proxy, err := ResolveProxy(opts.Proxy)
	if err != nil {
		return nil, err
	}

	jar, err := NewRecordingJar()
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxy

	headers := http.Header{}
	headers.Set("User-Agent", firstNonEmpty(opts.UserAgent, defaultUserAgent))
	headers.Set("Referer", firstNonEmpty(opts.Referer, defaultReferer))

	return &Session{
		Client: &http.Client{
			Transport: &headerTransport{base: transport, headers: headers},
			Jar:       jar,
			Timeout:   timeout,
		},
		Jar: jar,
	}, nil
}

// ResolveProxy maps the proxy selector to a transport proxy func.
func ResolveProxy(selector string) (func(*http.Request) (*url.URL, error), error) {
	switch strings.TrimSpace(selector) {
	case "", ProxyAuto:
		return http.ProxyFromEnvironment, nil
	case ProxyNone:
		return nil, nil
	}

	parsed, err := url.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", domain.ErrInvalidProxy, selector, err)
	}
	switch parsed.Scheme {
	case "http", "https", "socks5", "socks5h":
	default:
		return nil, fmt.Errorf("%w %q: scheme must be http, https, socks5 or socks5h", domain.ErrInvalidProxy, selector)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w %q: host is required", domain.ErrInvalidProxy, selector)
	}

	return http.ProxyURL(parsed), nil
}

type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for key, values := range t.headers {
		if clone.Header.Get(key) == "" {
			clone.Header[key] = values
		}
	}
	return t.base.RoundTrip(clone)
}

// RecordingJar is a public-suffix aware cookie jar that also remembers the
// domain each cookie was set for, which the standard jar does not expose.
type RecordingJar struct {
	jar      *cookiejar.Jar
	mu       sync.Mutex
	recorded []domain.Cookie
}

var _ http.CookieJar = (*RecordingJar)(nil)

func NewRecordingJar() (*RecordingJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &RecordingJar{jar: jar}, nil
}

func (j *RecordingJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)

	j.mu.Lock()
	defer j.mu.Unlock()

	host := normalizeHost(u.Hostname())
	for _, c := range cookies {
		record := domain.Cookie{
			Name:   c.Name,
			Value:  c.Value,
			Domain: c.Domain,
			Path:   c.Path,
		}
		if record.Domain == "" {
			record.Domain = host
		}
		if !domainAcceptedFor(host, record.Domain) {
			continue
		}
		if record.Path == "" {
			record.Path = "/"
		}
		j.recorded = upsertCookie(j.recorded, record, c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())))
	}
}

func (j *RecordingJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// Recorded returns every live cookie in the order first seen.
func (j *RecordingJar) Recorded() []domain.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]domain.Cookie, len(j.recorded))
	copy(out, j.recorded)
	return out
}

// upsertCookie keys cookies by name, normalized domain and path, so
// ".bilibili.com" and "bilibili.com" are the same slot. The latest spelling wins.
func upsertCookie(cookies []domain.Cookie, c domain.Cookie, remove bool) []domain.Cookie {
	key := normalizeHost(c.Domain)
	for i, existing := range cookies {
		if existing.Name != c.Name || normalizeHost(existing.Domain) != key || existing.Path != c.Path {
			continue
		}
		if remove {
			return append(cookies[:i], cookies[i+1:]...)
		}
		cookies[i] = c
		return cookies
	}
	if remove {
		return cookies
	}
	return append(cookies, c)
}

// domainAcceptedFor mirrors the jar's domain-match rule: the host equals the
// cookie domain or sits under it, and the domain is not a public suffix.
func domainAcceptedFor(host, cookieDomain string) bool {
	cookieDomain = normalizeHost(cookieDomain)
	if host == "" || cookieDomain == "" {
		return false
	}
	if host == cookieDomain {
		return true
	}
	if net.ParseIP(host) != nil || !strings.HasSuffix(host, "."+cookieDomain) {
		return false
	}
	_, err := publicsuffix.EffectiveTLDPlusOne(cookieDomain)
	return err == nil
}

func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	host = strings.TrimPrefix(host, ".")
	return strings.ToLower(host)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
