package domain

import (
	"fmt"
	"regexp"
	"time"
)

const (
	SessDataCookie = "SESSDATA"
	BiliJctCookie  = "bili_jct"
)

var profileNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type ProfileName string

func (p ProfileName) Validate() error {
	if !profileNamePattern.MatchString(string(p)) {
		return fmt.Errorf("%w: %q", ErrInvalidProfileName, string(p))
	}
	return nil
}

// Credential is the session pair sent as cookies on authenticated requests.
// An empty BiliJct means the csrf token is absent.
type Credential struct {
	SessData string
	BiliJct  string
}

func (c Credential) Valid() bool {
	return c.SessData != ""
}

// UserInfo is the subset of the who-am-I response used to confirm a login.
type UserInfo struct {
	IsLogin bool
	Name    string
	MID     int64
}

type ProfileSummary struct {
	Name       ProfileName
	Credential Credential
	UpdatedAt  time.Time
}

// MaskSecret keeps the first and last four characters of long tokens.
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= 8 {
		return "****"
	}
	return string(runes[:4]) + "…" + string(runes[len(runes)-4:])
}
