package application

import (
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
)

type LoginResult struct {
	Profile   domain.ProfileName
	StorePath string
	// FinalURL has query and fragment removed.
	FinalURL   string
	Credential domain.Credential
	// Verified is false when the credential was saved but the who-am-I
	// check failed or rejected it.
	Verified     bool
	VerifyReason string
	User         domain.UserInfo
}

type CheckResult struct {
	Profile domain.ProfileName
	User    domain.UserInfo
}

type ProfileStatus struct {
	Summary domain.ProfileSummary
	Age     time.Duration
}
