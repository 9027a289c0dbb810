package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"octodash-cli/api"
)

var (
	ErrEmptyInput         = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrNetwork            = errors.New("network unavailable")
	ErrServer             = errors.New("server error")
	ErrUnknown            = errors.New("login failed")
)

var domainErrors = []error{
	ErrEmptyInput,
	ErrInvalidCredentials,
	ErrForbidden,
	ErrNetwork,
	ErrServer,
	ErrUnknown,
}

// HandleError translates transport and API failures into one of the
// package's sentinel errors. The original error stays in the chain.
// Cancellation passes through untouched.
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Code == http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		case statusErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrForbidden, err)
		case statusErr.Code >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %w", ErrServer, err)
		}
		return fmt.Errorf("%w: %w", ErrUnknown, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return fmt.Errorf("%w: %w", ErrUnknown, err)
}
