package application

import (
	"context"
	"fmt"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/bnema/bilibili-accounts-cli/internal/ports"
	"go.uber.org/zap"
)

const sessionRejectedReason = "session was not accepted by bilibili"

type LoginService struct {
	api      ports.QRLoginAPI
	renderer ports.QRRenderer
	store    ports.CredentialStore
	verifier ports.LoginVerifier
	log      *zap.Logger
}

func NewLoginService(api ports.QRLoginAPI, renderer ports.QRRenderer, store ports.CredentialStore, verifier ports.LoginVerifier, log *zap.Logger) *LoginService {
	if log == nil {
		log = zap.NewNop()
	}

	return &LoginService{
		api:      api,
		renderer: renderer,
		store:    store,
		verifier: verifier,
		log:      log,
	}
}

// Login runs one QR login and stores the resulting credential. A failed
// verification is reported through LoginResult.Verified, not as an error.
func (s *LoginService) Login(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Profile.Validate(); err != nil {
		return LoginResult{}, err
	}

	challenge, err := s.api.GenerateQRCode(ctx)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate qr code: %w", err)
	}

	if err := s.renderer.Render(ctx, challenge.LoginURL); err != nil {
		return LoginResult{}, fmt.Errorf("render qr code: %w", err)
	}
	s.log.Info("scan the qr code with the bilibili app and confirm the login")

	redirectURL, err := PollQRLogin(ctx, s.api, challenge.Key, PollOptions{
		Timeout:  cmd.Timeout,
		Interval: cmd.PollInterval,
		OnStatusChange: func(status domain.PollStatus) {
			// A caller-owned status display replaces the info line.
			if cmd.OnStatus != nil {
				s.log.Debug(statusMessage(status), zap.Stringer("status", status))
				cmd.OnStatus(status)
				return
			}
			s.log.Info(statusMessage(status), zap.Stringer("status", status))
		},
	})
	if err != nil {
		return LoginResult{}, err
	}

	finalURL, err := s.api.FollowRedirect(ctx, redirectURL)
	if err != nil {
		s.log.Warn("confirmation url request failed, extracting from the redirect url", zap.Error(err))
		finalURL = redirectURL
	}

	credential := domain.ExtractCredential(s.api.Cookies(), finalURL, redirectURL)
	if !credential.Valid() {
		return LoginResult{}, domain.ErrNoCredential
	}

	var biliJct *string
	if credential.BiliJct != "" {
		biliJct = &credential.BiliJct
	}
	if err := s.store.Save(ctx, cmd.Profile, credential.SessData, biliJct); err != nil {
		return LoginResult{}, fmt.Errorf("save credential: %w", err)
	}

	result := LoginResult{
		Profile:    cmd.Profile,
		StorePath:  s.store.Path(),
		FinalURL:   domain.SanitizeURL(finalURL),
		Credential: credential,
	}

	user, err := s.verifier.Verify(ctx, credential)
	switch {
	case err != nil:
		result.VerifyReason = err.Error()
	case !user.IsLogin:
		result.VerifyReason = sessionRejectedReason
	default:
		result.Verified = true
		result.User = user
	}

	if !result.Verified {
		s.log.Warn("credential saved but login verification failed",
			zap.String("profile", string(cmd.Profile)),
			zap.String("reason", result.VerifyReason),
		)
	}

	return result, nil
}

func statusMessage(status domain.PollStatus) string {
	switch status {
	case domain.PollStatusNotScanned:
		return "waiting for the qr code to be scanned"
	case domain.PollStatusScanned:
		return "qr code scanned, confirm the login in the app"
	default:
		return "qr code status changed"
	}
}
