package ports

import (
	"context"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
)

type CredentialStore interface {
	// Load reports false when the profile is missing or the store is unreadable.
	Load(ctx context.Context, profile domain.ProfileName) (domain.Credential, bool, error)
	// Save leaves an existing bili_jct untouched when biliJct is nil.
	Save(ctx context.Context, profile domain.ProfileName, sessData string, biliJct *string) error
	List(ctx context.Context) ([]domain.ProfileSummary, error)
	Path() string
}
