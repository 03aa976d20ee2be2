package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/bnema/bilibili-accounts-cli/internal/ports"
)

const (
	defaultLoginTimeout = 180 * time.Second
	defaultPollInterval = time.Second
)

type PollOptions struct {
	Timeout  time.Duration
	Interval time.Duration
	// OnStatusChange fires once per distinct not-scanned/scanned status.
	OnStatusChange func(domain.PollStatus)
}

// PollQRLogin polls until the code is confirmed and returns the redirect URL.
// The deadline also bounds in-flight requests and the final sleep.
func PollQRLogin(ctx context.Context, api ports.QRLoginAPI, key string, opts PollOptions) (string, error) {
	if key == "" {
		return "", errors.New("qrcode key is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultLoginTimeout
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	deadline := time.Now().Add(timeout)
	pollCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	machine := domain.NewQRLoginMachine()
	for {
		result, err := api.PollQRCode(pollCtx, key)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if pollCtx.Err() != nil && errors.Is(err, context.DeadlineExceeded) {
				machine.Deadline()
				return "", machine.Err()
			}
			return "", err
		}

		transition := machine.Observe(result.Status)
		if transition.Notify && opts.OnStatusChange != nil {
			opts.OnStatusChange(result.Status)
		}

		switch transition.To {
		case domain.LoginStateConfirmed:
			if result.RedirectURL == "" {
				return "", fmt.Errorf("poll qr code: %w: confirmed without redirect url", domain.ErrProtocol)
			}
			return result.RedirectURL, nil
		case domain.LoginStateExpired:
			return "", machine.Err()
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			machine.Deadline()
			return "", machine.Err()
		}

		timer := time.NewTimer(min(interval, remaining))
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return "", ctx.Err()
		case <-timer.C:
		}

		if !time.Now().Before(deadline) {
			machine.Deadline()
			return "", machine.Err()
		}
	}
}
