package qrcode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/bnema/bilibili-accounts-cli/internal/ports"
	"github.com/mdp/qrterminal/v3"
	goqrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	ModeConsole = "console"
	ModeImage   = "image"

	imageSize = 320
)

var ErrOpenerUnavailable = errors.New("no image opener available")

type openFunc func(ctx context.Context, path string) error

// Renderer shows the login URL as a QR code. Image mode writes a PNG and
// hands it to the desktop opener; any failure there falls back to the
// terminal rendering.
type Renderer struct {
	mode   string
	out    io.Writer
	dir    string
	log    *zap.Logger
	open   openFunc
	images []string
}

var _ ports.QRRenderer = (*Renderer)(nil)

type Option func(*Renderer)

func WithImageDir(dir string) Option {
	return func(r *Renderer) {
		r.dir = dir
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

func NewRenderer(mode string, out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		mode: mode,
		out:  out,
		log:  zap.NewNop(),
		open: openWithDesktop,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Render(ctx context.Context, loginURL string) error {
	if loginURL == "" {
		return errors.New("login url is empty")
	}

	if r.mode == ModeImage {
		err := r.renderImage(ctx, loginURL)
		if err == nil {
			return nil
		}
		r.log.Warn("could not show the qr image, falling back to the terminal", zap.Error(err))
	}

	return r.renderTerminal(loginURL)
}

// Cleanup removes the PNG files written in image mode.
func (r *Renderer) Cleanup() {
	for _, path := range r.images {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			r.log.Debug("remove qr image", zap.String("path", path), zap.Error(err))
		}
	}
	r.images = nil
}

func (r *Renderer) renderTerminal(loginURL string) error {
	if r.out == nil {
		return errors.New("qr output is not configured")
	}

	qrterminal.GenerateHalfBlock(loginURL, qrterminal.L, r.out)
	if _, err := fmt.Fprintf(r.out, "\nIf the code does not scan, open this URL in the bilibili app:\n%s\n", loginURL); err != nil {
		return fmt.Errorf("write qr code: %w", err)
	}
	return nil
}

func (r *Renderer) renderImage(ctx context.Context, loginURL string) error {
	file, err := os.CreateTemp(r.dir, "bilibili-login-*.png")
	if err != nil {
		return fmt.Errorf("create qr image: %w", err)
	}
	path := file.Name()
	r.images = append(r.images, path)

	png, err := goqrcode.Encode(loginURL, goqrcode.Medium, imageSize)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("encode qr image: %w", err)
	}
	if _, err := file.Write(png); err != nil {
		_ = file.Close()
		return fmt.Errorf("write qr image: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close qr image: %w", err)
	}

	if err := r.open(ctx, path); err != nil {
		return fmt.Errorf("open qr image %s: %w", filepath.Base(path), err)
	}
	r.log.Info("qr code opened in the image viewer", zap.String("path", path))
	return nil
}

func openWithDesktop(ctx context.Context, path string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name, args = "open", []string{path}
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		name, args = "xdg-open", []string{path}
	}

	bin, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return ErrOpenerUnavailable
		}
		return fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
