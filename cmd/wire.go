package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/bilibili-accounts-cli/internal/adapters/bilibili"
	"github.com/bnema/bilibili-accounts-cli/internal/adapters/httpclient"
	qrrender "github.com/bnema/bilibili-accounts-cli/internal/adapters/render/qrcode"
	statusadapter "github.com/bnema/bilibili-accounts-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/bilibili-accounts-cli/internal/adapters/repo/toml"
	"github.com/bnema/bilibili-accounts-cli/internal/application"
	"github.com/bnema/bilibili-accounts-cli/internal/config"
	"github.com/bnema/bilibili-accounts-cli/internal/logger"
	"github.com/bnema/bilibili-accounts-cli/internal/ports"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	cfg            config.Config
	log            *zap.Logger
	store          *tomlrepo.Store
	verifier       ports.LoginVerifier
	service        *application.Service
	statusRenderer func([]application.ProfileStatus, statusadapter.RenderOptions) (string, error)
	isTerminal     func(io.Writer) bool
}

func (a *app) wire(v *viper.Viper, stderr io.Writer) error {
	if _, err := config.New(v); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	store, err := tomlrepo.NewStore(cfg.AuthPath, tomlrepo.WithLogger(log))
	if err != nil {
		return fmt.Errorf("wire credential store: %w", err)
	}

	session, err := newHTTPSession(cfg)
	if err != nil {
		return fmt.Errorf("wire http session: %w", err)
	}
	verifier := bilibili.NavVerifier{
		API:        bilibiliAPI(cfg),
		HTTPClient: session.Client,
	}

	a.cfg = cfg
	a.log = log
	a.store = store
	a.verifier = verifier
	a.service = application.NewService(store, verifier, ports.SystemClock{})
	a.statusRenderer = statusadapter.Render
	a.isTerminal = isTerminal
	return nil
}

// newLoginService builds a fresh HTTP session so each login starts with an
// empty cookie jar. The returned cleanup removes any QR image written.
func (a *app) newLoginService(out io.Writer) (*application.LoginService, func(), error) {
	session, err := newHTTPSession(a.cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("create login session: %w", err)
	}

	api := bilibili.NewQRLoginAdapter(bilibiliAPI(a.cfg), session)
	renderer := qrrender.NewRenderer(qrMode(a.cfg.Login.Mode), out, qrrender.WithLogger(a.log))

	return application.NewLoginService(api, renderer, a.store, a.verifier, a.log), renderer.Cleanup, nil
}

func newHTTPSession(cfg config.Config) (*httpclient.Session, error) {
	return httpclient.NewSession(httpclient.Options{
		Proxy:   cfg.Login.Proxy,
		Timeout: cfg.HTTPTimeout,
	})
}

func bilibiliAPI(cfg config.Config) bilibili.API {
	return bilibili.API{
		PassportURL: cfg.API.PassportURL,
		BaseURL:     cfg.API.BaseURL,
	}
}

func qrMode(mode string) string {
	if mode == config.QRModeImage {
		return qrrender.ModeImage
	}
	return qrrender.ModeConsole
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
