package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://passport.bilibili.com/", nil)

	testCases := []struct {
		name     string
		selector string
		wantNil  bool
		wantURL  string
		wantErr  bool
	}{
		{name: "auto", selector: "auto"},
		{name: "empty means auto", selector: ""},
		{name: "no proxy", selector: "no", wantNil: true},
		{name: "http", selector: "http://127.0.0.1:8080", wantURL: "http://127.0.0.1:8080"},
		{name: "socks5h", selector: "socks5h://127.0.0.1:1080", wantURL: "socks5h://127.0.0.1:1080"},
		{name: "unsupported scheme", selector: "ftp://127.0.0.1", wantErr: true},
		{name: "bare word", selector: "yes", wantErr: true},
		{name: "missing host", selector: "http://", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			proxy, err := ResolveProxy(tc.selector)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidProxy)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, proxy)
				return
			}
			require.NotNil(t, proxy)
			if tc.wantURL != "" {
				got, err := proxy(req)
				require.NoError(t, err)
				assert.Equal(t, tc.wantURL, got.String())
			}
		})
	}
}

func TestSessionSendsDefaultHeadersAndRecordsCookies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		assert.Equal(t, "https://www.bilibili.com", r.Header.Get("Referer"))
		http.SetCookie(w, &http.Cookie{Name: "SESSDATA", Value: "sess-1", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "bili_jct", Value: "jct-1", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	session, err := NewSession(Options{Proxy: ProxyNone})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := session.Client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	recorded := session.Jar.Recorded()
	require.Len(t, recorded, 2)
	assert.Equal(t, domain.Cookie{Name: "SESSDATA", Value: "sess-1", Domain: serverURL.Hostname(), Path: "/"}, recorded[0])

	value, ok := domain.ResolveCookie(recorded, "bili_jct")
	require.True(t, ok)
	assert.Equal(t, "jct-1", value)
}

func TestRecordingJarKeepsSameNameAcrossDomains(t *testing.T) {
	t.Parallel()

	jar, err := NewRecordingJar()
	require.NoError(t, err)

	passport, err := url.Parse("https://passport.bilibili.com/x/passport-login/web/crossDomain")
	require.NoError(t, err)
	jar.SetCookies(passport, []*http.Cookie{
		{Name: "SESSDATA", Value: "passport-value", Domain: "passport.bilibili.com"},
		{Name: "SESSDATA", Value: "apex-value", Domain: ".bilibili.com"},
	})
	jar.SetCookies(passport, []*http.Cookie{
		{Name: "SESSDATA", Value: "apex-updated", Domain: ".bilibili.com"},
	})

	recorded := jar.Recorded()
	require.Len(t, recorded, 2)

	value, ok := domain.ResolveCookie(recorded, "SESSDATA")
	require.True(t, ok)
	assert.Equal(t, "apex-updated", value)

	jar.SetCookies(passport, []*http.Cookie{
		{Name: "SESSDATA", Value: "", Domain: ".bilibili.com", MaxAge: -1},
	})
	recorded = jar.Recorded()
	require.Len(t, recorded, 1)
	assert.Equal(t, "passport-value", recorded[0].Value)

	www, err := url.Parse("https://www.bilibili.com/")
	require.NoError(t, err)
	assert.Empty(t, jar.Cookies(www))
}

func TestRecordingJarIgnoresCookiesTheJarRejects(t *testing.T) {
	t.Parallel()

	jar, err := NewRecordingJar()
	require.NoError(t, err)

	passport, err := url.Parse("https://passport.bilibili.com/x/passport-login/web/crossDomain")
	require.NoError(t, err)
	other, err := url.Parse("https://cdn.example.net/landing")
	require.NoError(t, err)

	jar.SetCookies(passport, []*http.Cookie{{Name: "SESSDATA", Value: "legit", Domain: ".bilibili.com"}})
	jar.SetCookies(other, []*http.Cookie{
		{Name: "SESSDATA", Value: "foreign", Domain: ".bilibili.com"},
		{Name: "bili_jct", Value: "suffix", Domain: ".net"},
	})

	value, ok := domain.ResolveCookie(jar.Recorded(), "SESSDATA")
	require.True(t, ok)
	assert.Equal(t, "legit", value)
	require.Len(t, jar.Recorded(), 1)

	_, ok = domain.ResolveCookie(jar.Recorded(), "bili_jct")
	assert.False(t, ok)

	sent := jar.Cookies(passport)
	require.Len(t, sent, 1)
	assert.Equal(t, "legit", sent[0].Value)
}

func TestRecordingJarMergesEquivalentDomainSpellings(t *testing.T) {
	t.Parallel()

	jar, err := NewRecordingJar()
	require.NoError(t, err)

	www, err := url.Parse("https://www.bilibili.com/")
	require.NoError(t, err)

	jar.SetCookies(www, []*http.Cookie{{Name: "SESSDATA", Value: "old", Domain: ".bilibili.com"}})
	jar.SetCookies(www, []*http.Cookie{{Name: "SESSDATA", Value: "new", Domain: "Bilibili.com"}})

	recorded := jar.Recorded()
	require.Len(t, recorded, 1)
	assert.Equal(t, domain.Cookie{Name: "SESSDATA", Value: "new", Domain: "Bilibili.com", Path: "/"}, recorded[0])

	value, ok := domain.ResolveCookie(recorded, "SESSDATA")
	require.True(t, ok)
	assert.Equal(t, "new", value)

	sent := jar.Cookies(www)
	require.Len(t, sent, 1)
	assert.Equal(t, "new", sent[0].Value)
}

func TestDomainAcceptedFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		host   string
		domain string
		want   bool
	}{
		{host: "passport.bilibili.com", domain: ".bilibili.com", want: true},
		{host: "bilibili.com", domain: "bilibili.com", want: true},
		{host: "passport.bilibili.com", domain: "passport.bilibili.com", want: true},
		{host: "evil.example.net", domain: ".bilibili.com", want: false},
		{host: "notbilibili.com", domain: "bilibili.com", want: false},
		{host: "www.bilibili.com", domain: ".com", want: false},
		{host: "127.0.0.1", domain: "127.0.0.1", want: true},
		{host: "127.0.0.1", domain: "0.0.1", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.host+"_"+tc.domain, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, domainAcceptedFor(tc.host, tc.domain))
		})
	}
}
