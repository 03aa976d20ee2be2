package application

import (
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
)

type LoginCommand struct {
	Profile      domain.ProfileName
	Timeout      time.Duration
	PollInterval time.Duration
	OnStatus     func(domain.PollStatus)
}

// SetCredentialCommand saves a known credential. Inline wins over the
// separate fields when set; a nil BiliJct keeps the stored one.
type SetCredentialCommand struct {
	Profile  domain.ProfileName
	Inline   string
	SessData string
	BiliJct  *string
}
