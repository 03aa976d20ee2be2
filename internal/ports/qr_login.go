package ports

import (
	"context"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
)

type QRLoginAPI interface {
	GenerateQRCode(ctx context.Context) (domain.QRChallenge, error)
	PollQRCode(ctx context.Context, key string) (domain.PollResult, error)
	// FollowRedirect requests the confirmation URL so the session cookie jar
	// settles, returning the final URL after redirects.
	FollowRedirect(ctx context.Context, redirectURL string) (string, error)
	Cookies() []domain.Cookie
}

type QRRenderer interface {
	Render(ctx context.Context, loginURL string) error
}

type LoginVerifier interface {
	Verify(ctx context.Context, credential domain.Credential) (domain.UserInfo, error)
}
