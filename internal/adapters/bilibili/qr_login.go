package bilibili

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/adapters/httpclient"
	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/bnema/bilibili-accounts-cli/internal/ports"
)

const (
	DefaultPassportURL = "https://passport.bilibili.com"
	DefaultBaseURL     = "https://api.bilibili.com"

	qrGeneratePath = "/x/passport-login/web/qrcode/generate"
	qrPollPath     = "/x/passport-login/web/qrcode/poll"
	navPath        = "/x/web-interface/nav"
	loginSource    = "main-fe-header"

	maxResponseBytes = 1 << 20
)

type API struct {
	PassportURL string
	BaseURL     string
}

// QRLoginAdapter talks to the passport QR endpoints through one session, so
// the cookies set while confirming the login stay in its jar.
type QRLoginAdapter struct {
	API            API
	Session        *httpclient.Session
	RequestTimeout time.Duration
}

var _ ports.QRLoginAPI = (*QRLoginAdapter)(nil)

type envelope struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type generateData struct {
	URL       *string `json:"url"`
	QRCodeKey *string `json:"qrcode_key"`
}

type pollData struct {
	Code *int    `json:"code"`
	URL  *string `json:"url"`
}

func NewQRLoginAdapter(api API, session *httpclient.Session) *QRLoginAdapter {
	return &QRLoginAdapter{API: api, Session: session}
}

func (a *QRLoginAdapter) GenerateQRCode(ctx context.Context) (domain.QRChallenge, error) {
	endpoint, err := buildAPIURL(a.API.PassportURL, qrGeneratePath, url.Values{"source": {loginSource}})
	if err != nil {
		return domain.QRChallenge{}, err
	}

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()

	var data generateData
	if err := a.getJSON(requestCtx, endpoint, "generate qr code", &data); err != nil {
		return domain.QRChallenge{}, err
	}
	if data.URL == nil || data.QRCodeKey == nil {
		return domain.QRChallenge{}, fmt.Errorf("generate qr code: %w: missing url or qrcode_key", domain.ErrProtocol)
	}

	return domain.QRChallenge{LoginURL: *data.URL, Key: *data.QRCodeKey}, nil
}

func (a *QRLoginAdapter) PollQRCode(ctx context.Context, key string) (domain.PollResult, error) {
	if key == "" {
		return domain.PollResult{}, errors.New("qrcode key is required")
	}

	endpoint, err := buildAPIURL(a.API.PassportURL, qrPollPath, url.Values{
		"qrcode_key": {key},
		"source":     {loginSource},
	})
	if err != nil {
		return domain.PollResult{}, err
	}

	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()

	var data pollData
	if err := a.getJSON(requestCtx, endpoint, "poll qr code", &data); err != nil {
		return domain.PollResult{}, err
	}
	if data.Code == nil {
		return domain.PollResult{}, fmt.Errorf("poll qr code: %w: missing status code", domain.ErrProtocol)
	}

	result := domain.PollResult{Status: domain.PollStatus(*data.Code)}
	if data.URL != nil {
		result.RedirectURL = *data.URL
	}
	return result, nil
}

func (a *QRLoginAdapter) FollowRedirect(ctx context.Context, redirectURL string) (string, error) {
	requestCtx, cancel := a.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, redirectURL, nil)
	if err != nil {
		return "", fmt.Errorf("create confirmation request: %w", err)
	}

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("request confirmation url: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	return resp.Request.URL.String(), nil
}

func (a *QRLoginAdapter) Cookies() []domain.Cookie {
	if a.Session == nil || a.Session.Jar == nil {
		return nil
	}
	return a.Session.Jar.Recorded()
}

func (a *QRLoginAdapter) getJSON(ctx context.Context, endpoint, action string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", action, err)
	}

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: status %d", action, resp.StatusCode)
	}

	var payload envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return fmt.Errorf("%s: %w: decode response: %w", action, domain.ErrProtocol, err)
	}
	if payload.Code == nil || *payload.Code != 0 {
		return fmt.Errorf("%s: %w: %s", action, domain.ErrProtocol, describeEnvelope(payload))
	}
	if len(payload.Data) == 0 || payload.Data[0] != '{' {
		return fmt.Errorf("%s: %w: data is not an object", action, domain.ErrProtocol)
	}
	if err := json.Unmarshal(payload.Data, data); err != nil {
		return fmt.Errorf("%s: %w: decode data: %w", action, domain.ErrProtocol, err)
	}
	return nil
}

func (a *QRLoginAdapter) httpClient() *http.Client {
	if a.Session != nil && a.Session.Client != nil {
		return a.Session.Client
	}
	return http.DefaultClient
}

func (a *QRLoginAdapter) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return requestContext(ctx, a.RequestTimeout)
}

func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func describeEnvelope(payload envelope) string {
	if payload.Code == nil {
		return "missing envelope code"
	}
	if payload.Message != "" {
		return fmt.Sprintf("code %d: %s", *payload.Code, payload.Message)
	}
	return fmt.Sprintf("code %d", *payload.Code)
}

func buildAPIURL(baseURL string, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String(), nil
}
