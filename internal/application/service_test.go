package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/bilibili-accounts-cli/internal/adapters/repo/toml"
	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/bnema/bilibili-accounts-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServiceSetCredentialFromInline(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	service := NewService(store, mocks.NewMockLoginVerifier(t), mocks.NewMockClock(t))

	jct := "jct-1"
	store.EXPECT().Save(mockAnyContext(), domain.ProfileName("work"), "sess-1", &jct).Return(nil).Once()

	credential, err := service.SetCredential(context.Background(), SetCredentialCommand{
		Profile: "work",
		Inline:  " SESSDATA = sess-1 ; bili_jct=jct-1 ",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Credential{SessData: "sess-1", BiliJct: "jct-1"}, credential)
}

func TestServiceSetCredentialInlineWithoutBiliJctKeepsStoredOne(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	service := NewService(store, mocks.NewMockLoginVerifier(t), mocks.NewMockClock(t))

	store.EXPECT().Save(mockAnyContext(), domain.ProfileName("default"), "sess-1", (*string)(nil)).Return(nil).Once()

	_, err := service.SetCredential(context.Background(), SetCredentialCommand{
		Profile: "default",
		Inline:  "SESSDATA=sess-1",
	})
	require.NoError(t, err)
}

func TestServiceSetCredentialFromFields(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	service := NewService(store, mocks.NewMockLoginVerifier(t), mocks.NewMockClock(t))

	jct := "jct-2"
	store.EXPECT().Save(mockAnyContext(), domain.ProfileName("default"), "sess-2", &jct).Return(nil).Once()

	credential, err := service.SetCredential(context.Background(), SetCredentialCommand{
		Profile:  "default",
		SessData: "sess-2",
		BiliJct:  &jct,
	})
	require.NoError(t, err)
	assert.Equal(t, "jct-2", credential.BiliJct)
}

func TestServiceSetCredentialValidatesInput(t *testing.T) {
	testCases := []struct {
		name    string
		cmd     SetCredentialCommand
		wantErr error
	}{
		{name: "bad profile", cmd: SetCredentialCommand{Profile: "a/b", SessData: "x"}, wantErr: domain.ErrInvalidProfileName},
		{name: "inline without sessdata", cmd: SetCredentialCommand{Profile: "default", Inline: "bili_jct=j"}, wantErr: domain.ErrValidation},
		{name: "no sessdata", cmd: SetCredentialCommand{Profile: "default"}, wantErr: domain.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockCredentialStore(t)
			service := NewService(store, mocks.NewMockLoginVerifier(t), mocks.NewMockClock(t))

			_, err := service.SetCredential(context.Background(), tc.cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestServiceCredentialMissingProfile(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	service := NewService(store, mocks.NewMockLoginVerifier(t), mocks.NewMockClock(t))

	store.EXPECT().Load(mockAnyContext(), domain.ProfileName("ghost")).Return(domain.Credential{}, false, nil).Once()

	_, err := service.Credential(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestServiceCheck(t *testing.T) {
	credential := domain.Credential{SessData: "sess-1", BiliJct: "jct-1"}

	t.Run("logged in", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		verifier := mocks.NewMockLoginVerifier(t)
		service := NewService(store, verifier, mocks.NewMockClock(t))

		store.EXPECT().Load(mockAnyContext(), domain.ProfileName("default")).Return(credential, true, nil).Once()
		verifier.EXPECT().Verify(mockAnyContext(), credential).Return(domain.UserInfo{IsLogin: true, Name: "bishi", MID: 7}, nil).Once()

		result, err := service.Check(context.Background(), "default")
		require.NoError(t, err)
		assert.Equal(t, "bishi", result.User.Name)
	})

	t.Run("rejected", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		verifier := mocks.NewMockLoginVerifier(t)
		service := NewService(store, verifier, mocks.NewMockClock(t))

		store.EXPECT().Load(mockAnyContext(), domain.ProfileName("default")).Return(credential, true, nil).Once()
		verifier.EXPECT().Verify(mockAnyContext(), credential).Return(domain.UserInfo{}, nil).Once()

		_, err := service.Check(context.Background(), "default")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSessionRejected)
	})

	t.Run("verify failure", func(t *testing.T) {
		store := mocks.NewMockCredentialStore(t)
		verifier := mocks.NewMockLoginVerifier(t)
		service := NewService(store, verifier, mocks.NewMockClock(t))

		store.EXPECT().Load(mockAnyContext(), domain.ProfileName("default")).Return(credential, true, nil).Once()
		verifier.EXPECT().Verify(mockAnyContext(), credential).Return(domain.UserInfo{}, errors.New("request nav: status 503")).Once()

		_, err := service.Check(context.Background(), "default")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verify credential")
	})
}

func TestServiceStatusComputesAge(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	service := NewService(store, mocks.NewMockLoginVerifier(t), clock)

	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).Once()
	store.EXPECT().List(mockAnyContext()).Return([]domain.ProfileSummary{
		{Name: "default", Credential: domain.Credential{SessData: "a"}, UpdatedAt: now.Add(-90 * time.Minute)},
		{Name: "legacy", Credential: domain.Credential{SessData: "b"}},
		{Name: "skewed", Credential: domain.Credential{SessData: "c"}, UpdatedAt: now.Add(time.Hour)},
	}, nil).Once()

	statuses, err := service.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, 90*time.Minute, statuses[0].Age)
	assert.Zero(t, statuses[1].Age)
	assert.Zero(t, statuses[2].Age)
}

func TestServiceWithTomlStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.toml")
	store, err := tomlrepo.NewStore(path)
	require.NoError(t, err)
	service := NewService(store, mocks.NewMockLoginVerifier(t), nil)

	_, err = service.SetCredential(context.Background(), SetCredentialCommand{Profile: "default", Inline: "SESSDATA=s1; bili_jct=j1"})
	require.NoError(t, err)
	_, err = service.SetCredential(context.Background(), SetCredentialCommand{Profile: "default", SessData: "s2"})
	require.NoError(t, err)

	credential, err := service.Credential(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, domain.Credential{SessData: "s2", BiliJct: "j1"}, credential)

	statuses, err := service.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, domain.ProfileName("default"), statuses[0].Summary.Name)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
