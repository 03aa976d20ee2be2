package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBilibili struct {
	polls       atomic.Int32
	pollScript  []string
	navResponse string
}

func newFakeBilibili(t *testing.T, pollScript ...string) (*fakeBilibili, *httptest.Server) {
	t.Helper()

	fake := &fakeBilibili{
		pollScript:  pollScript,
		navResponse: `{"code":0,"data":{"isLogin":true,"uname":"bishi","mid":42}}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/x/passport-login/web/qrcode/generate", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":0,"data":{"url":"https://account.bilibili.com/h5/account-h5/auth/scan-web?qrcode_key=key-1","qrcode_key":"key-1"}}`))
	})
	mux.HandleFunc("/x/passport-login/web/qrcode/poll", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.URL.Query().Get("qrcode_key"))
		index := int(fake.polls.Add(1)) - 1
		if index >= len(fake.pollScript) {
			index = len(fake.pollScript) - 1
		}
		body := fake.pollScript[index]
		if body == "confirmed" {
			body = `{"code":0,"data":{"code":0,"url":"http://` + r.Host + `/x/passport-login/web/crossDomain?SESSDATA=url-sess&bili_jct=url-jct"}}`
		}
		_, _ = w.Write([]byte(body))
	})
	mux.HandleFunc("/x/passport-login/web/crossDomain", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "SESSDATA", Value: "cookie-sess-0123456789", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "bili_jct", Value: "cookie-jct-0123456789", Path: "/"})
		http.Redirect(w, r, "/landing?token=secret", http.StatusFound)
	})
	mux.HandleFunc("/landing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/x/web-interface/nav", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fake.navResponse))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	t.Setenv("BA_API_PASSPORT_URL", server.URL)
	t.Setenv("BA_API_BASE_URL", server.URL)
	t.Setenv("BA_LOGIN_PROXY", "no")
	return fake, server
}

const (
	pollNotScanned = `{"code":0,"data":{"code":86101,"url":""}}`
	pollScanned    = `{"code":0,"data":{"code":86090,"url":""}}`
	pollExpired    = `{"code":0,"data":{"code":86038,"url":""}}`
)

func TestLoginSavesCredentialFromCookies(t *testing.T) {
	home := t.TempDir()
	fake, _ := newFakeBilibili(t, pollNotScanned, pollNotScanned, pollScanned, "confirmed")

	stdout, stderr, err := executeCLI(t, home,
		"login",
		"--mode", "console",
		"--timeout", "5",
		"--poll-interval", "0.01",
		"--profile", "work",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Equal(t, int32(4), fake.polls.Load())
	assert.Contains(t, stdout, "qrcode_key=key-1")
	assert.Contains(t, stdout, "Logged in as bishi (mid 42)")
	assert.Contains(t, stdout, "profile: work")
	assert.NotContains(t, stdout, "token=secret")
	assert.Contains(t, stderr, "waiting for the qr code to be scanned")
	assert.Contains(t, stderr, "qr code scanned")

	data, err := os.ReadFile(authFilePath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[profiles.work]")
	assert.Contains(t, string(data), `sessdata = "cookie-sess-0123456789"`)
	assert.Contains(t, string(data), `bili_jct = "cookie-jct-0123456789"`)
}

func TestLoginDegradedWhenVerificationRejected(t *testing.T) {
	home := t.TempDir()
	fake, _ := newFakeBilibili(t, "confirmed")
	fake.navResponse = `{"code":-101,"message":"账号未登录","data":{"isLogin":false}}`

	stdout, stderr, err := executeCLI(t, home, "login", "--timeout", "5", "--poll-interval", "0.01")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "the login check failed: session was not accepted by bilibili")
	assert.Contains(t, stderr, "credential saved but login verification failed")

	_, err = os.Stat(authFilePath(home))
	require.NoError(t, err)
}

func TestLoginReportsExpiredQRCode(t *testing.T) {
	home := t.TempDir()
	newFakeBilibili(t, pollNotScanned, pollExpired)

	_, _, err := executeCLI(t, home, "login", "--timeout", "5", "--poll-interval", "0.01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qr code expired")

	_, statErr := os.Stat(authFilePath(home))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoginTimesOut(t *testing.T) {
	home := t.TempDir()
	newFakeBilibili(t, pollNotScanned)

	_, _, err := executeCLI(t, home, "login", "--timeout", "0.1", "--poll-interval", "0.02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not confirmed in time")
}

func TestLoginRejectsInvalidProxy(t *testing.T) {
	home := t.TempDir()
	newFakeBilibili(t, "confirmed")

	_, _, err := executeCLI(t, home, "login", "--proxy", "ftp://127.0.0.1:21")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid proxy")
}

func TestAuthSetShowAndStatus(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BA_LOGIN_PROXY", "no")

	_, stderr, err := executeCLI(t, home, "auth", "set", "--inline", "SESSDATA=abcd1234efgh5678; bili_jct=jct0000jct9999")
	require.NoError(t, err, "stderr: %s", stderr)

	_, _, err = executeCLI(t, home, "auth", "set", "--profile", "alt", "--sessdata", "alt-session-token")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "auth", "show")
	require.NoError(t, err)
	assert.Equal(t, "SESSDATA=abcd…5678; bili_jct=jct0…9999\n", stdout)

	stdout, _, err = executeCLI(t, home, "auth", "show", "--reveal")
	require.NoError(t, err)
	assert.Equal(t, "SESSDATA=abcd1234efgh5678; bili_jct=jct0000jct9999\n", stdout)

	stdout, _, err = executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "profiles: 2")
	assert.Contains(t, stdout, "alt")
	assert.Contains(t, stdout, "default")
	assert.NotContains(t, stdout, "abcd1234efgh5678")

	stdout, _, err = executeCLI(t, home, "status", "--json")
	require.NoError(t, err)
	var payload []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload, 2)
	assert.Equal(t, "alt", payload[0]["profile"])
	assert.Equal(t, "alt-…oken", payload[0]["sessdata"])
	assert.Equal(t, "default", payload[1]["profile"])
	assert.NotEmpty(t, payload[1]["updated_at"])
}

func TestAuthSetValidation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BA_LOGIN_PROXY", "no")

	_, _, err := executeCLI(t, home, "auth", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --inline or --sessdata is required")

	_, _, err = executeCLI(t, home, "auth", "set", "--profile", "../etc", "--sessdata", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid auth profile name")

	_, _, err = executeCLI(t, home, "auth", "set", "--inline", "bili_jct=only")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSDATA")

	_, statErr := os.Stat(filepath.Dir(authFilePath(home)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAuthShowMissingProfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BA_LOGIN_PROXY", "no")

	_, _, err := executeCLI(t, home, "auth", "show", "--profile", "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `profile "ghost"`)
}

func TestAuthCheckUsesNavEndpoint(t *testing.T) {
	home := t.TempDir()
	newFakeBilibili(t, "confirmed")

	_, _, err := executeCLI(t, home, "auth", "set", "--sessdata", "sess-1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "auth", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Profile default is logged in as bishi (mid 42)")
}

func TestAuthFileFlagOverridesStorePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BA_LOGIN_PROXY", "no")
	custom := filepath.Join(t.TempDir(), "nested", "creds.toml")

	_, _, err := executeCLI(t, home, "auth", "set", "--auth-file", custom, "--sessdata", "sess-1")
	require.NoError(t, err)

	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[profiles.default]")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func authFilePath(home string) string {
	return filepath.Join(home, ".config", "bilibili-accounts", "auth.toml")
}
