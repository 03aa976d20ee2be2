package bilibili

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/bnema/bilibili-accounts-cli/internal/ports"
)

// NavVerifier asks the nav endpoint who the credential belongs to.
type NavVerifier struct {
	API            API
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.LoginVerifier = NavVerifier{}

type navResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		IsLogin bool   `json:"isLogin"`
		UName   string `json:"uname"`
		MID     int64  `json:"mid"`
	} `json:"data"`
}

// Verify returns IsLogin false without an error when the endpoint answers
// but rejects the session (code -101 and friends).
func (v NavVerifier) Verify(ctx context.Context, credential domain.Credential) (domain.UserInfo, error) {
	if !credential.Valid() {
		return domain.UserInfo{}, errors.New("sessdata is required")
	}

	endpoint, err := buildAPIURL(v.API.BaseURL, navPath, nil)
	if err != nil {
		return domain.UserInfo{}, err
	}

	requestCtx, cancel := requestContext(ctx, v.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.UserInfo{}, fmt.Errorf("create nav request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: domain.SessDataCookie, Value: credential.SessData})
	if credential.BiliJct != "" {
		req.AddCookie(&http.Cookie{Name: domain.BiliJctCookie, Value: credential.BiliJct})
	}

	client := v.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.UserInfo{}, fmt.Errorf("request nav: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.UserInfo{}, fmt.Errorf("request nav: status %d", resp.StatusCode)
	}

	var payload navResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.UserInfo{}, fmt.Errorf("decode nav response: %w", err)
	}
	if payload.Code != 0 {
		return domain.UserInfo{}, nil
	}

	return domain.UserInfo{
		IsLogin: payload.Data.IsLogin,
		Name:    payload.Data.UName,
		MID:     payload.Data.MID,
	}, nil
}
