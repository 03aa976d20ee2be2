package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidProfileName = fmt.Errorf("%w: invalid auth profile name", ErrValidation)
	ErrProtocol           = fmt.Errorf("%w: unexpected login api response", ErrValidation)
	ErrInvalidProxy       = fmt.Errorf("%w: invalid proxy", ErrValidation)

	ErrTimeout       = errors.New("login timed out")
	ErrLoginTimeout  = fmt.Errorf("%w: qr code was not confirmed in time, please retry", ErrTimeout)
	ErrQRCodeExpired = fmt.Errorf("%w: qr code expired, re-run login", ErrTimeout)

	ErrStore           = errors.New("credential store failure")
	ErrNoCredential    = errors.New("login succeeded upstream but no SESSDATA was extracted")
	ErrProfileNotFound = errors.New("no credential stored for profile")
)

// StoreError reports a failed write to the credential store.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Err}
}
