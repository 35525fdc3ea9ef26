package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"syscall"

	"ad-fanout/internal/core/domain"
)

func classifyRequestError(ctx context.Context, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("timeout: %w", err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("network error: %w", err)
	}
	return fmt.Errorf("request error: %w", err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}

// IsAuthError reports whether err is a rejection of the credentials
// themselves (401 or 403).
func IsAuthError(err error) bool {
	var rerr *domain.RemoteError
	if !errors.As(err, &rerr) {
		return false
	}
	return rerr.StatusCode == http.StatusUnauthorized || rerr.StatusCode == http.StatusForbidden
}

// Probe runs a connectivity check and folds any failure into a
// *domain.ConnectionError.
func Probe(p domain.Platform, err error) error {
	if err == nil {
		return nil
	}
	var connErr *domain.ConnectionError
	if errors.As(err, &connErr) {
		return connErr
	}
	if IsAuthError(err) {
		return &domain.ConnectionError{Platform: p, Err: fmt.Errorf("invalid credentials: %w", err)}
	}
	return &domain.ConnectionError{Platform: p, Err: err}
}
