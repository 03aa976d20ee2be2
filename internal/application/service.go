package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/bnema/bilibili-accounts-cli/internal/ports"
)

var ErrSessionRejected = errors.New(sessionRejectedReason)

// Service covers the credential operations that do not need a login session.
type Service struct {
	store    ports.CredentialStore
	verifier ports.LoginVerifier
	clock    ports.Clock
}

func NewService(store ports.CredentialStore, verifier ports.LoginVerifier, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		store:    store,
		verifier: verifier,
		clock:    clock,
	}
}

func (s *Service) SetCredential(ctx context.Context, cmd SetCredentialCommand) (domain.Credential, error) {
	if err := cmd.Profile.Validate(); err != nil {
		return domain.Credential{}, err
	}

	credential := domain.Credential{SessData: cmd.SessData}
	biliJct := cmd.BiliJct
	if cmd.Inline != "" {
		parsed, ok := domain.ParseInline(cmd.Inline)
		if !ok {
			return domain.Credential{}, fmt.Errorf("%w: inline credential needs a non-empty SESSDATA", domain.ErrValidation)
		}
		credential = parsed
		biliJct = nil
		if parsed.BiliJct != "" {
			biliJct = &credential.BiliJct
		}
	}
	if !credential.Valid() {
		return domain.Credential{}, fmt.Errorf("%w: sessdata is required", domain.ErrValidation)
	}
	if biliJct != nil {
		credential.BiliJct = *biliJct
	}

	if err := s.store.Save(ctx, cmd.Profile, credential.SessData, biliJct); err != nil {
		return domain.Credential{}, fmt.Errorf("save credential: %w", err)
	}
	return credential, nil
}

func (s *Service) Credential(ctx context.Context, profile domain.ProfileName) (domain.Credential, error) {
	credential, ok, err := s.store.Load(ctx, profile)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("load credential: %w", err)
	}
	if !ok {
		return domain.Credential{}, fmt.Errorf("profile %q: %w", profile, domain.ErrProfileNotFound)
	}
	return credential, nil
}

// Check asks bilibili whether the stored credential is still logged in.
func (s *Service) Check(ctx context.Context, profile domain.ProfileName) (CheckResult, error) {
	credential, err := s.Credential(ctx, profile)
	if err != nil {
		return CheckResult{}, err
	}

	user, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		return CheckResult{}, fmt.Errorf("verify credential: %w", err)
	}
	if !user.IsLogin {
		return CheckResult{Profile: profile, User: user}, fmt.Errorf("profile %q: %w", profile, ErrSessionRejected)
	}
	return CheckResult{Profile: profile, User: user}, nil
}

func (s *Service) Status(ctx context.Context) ([]ProfileStatus, error) {
	summaries, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	now := s.clock.Now()
	statuses := make([]ProfileStatus, 0, len(summaries))
	for _, summary := range summaries {
		status := ProfileStatus{Summary: summary}
		if !summary.UpdatedAt.IsZero() {
			status.Age = max(now.Sub(summary.UpdatedAt), 0)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
