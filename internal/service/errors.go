package service

import (
	"errors"
	"fmt"

	"feedrelay/backend/internal/discord"
)

var (
	ErrInvalid             = errors.New("invalid argument")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrFeatureUnavailable  = errors.New("feature unavailable")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// upstreamError tags gateway connectivity failures. API errors are returned as is
// so callers can still inspect the status code.
func upstreamError(err error) error {
	if errors.Is(err, discord.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return err
}
