package remote

import (
	"context"
	"net/http"

	domainerrors "homiio/internal/domain/errors"

	"homiio/internal/errors"
)

// classifyTransportError maps a transport-level failure (DNS, refused
// connection, timeout) onto the domain error taxonomy. Context cancellation
// is passed through unchanged so callers can distinguish their own aborts.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return domainerrors.ErrNetworkUnavailable.WithDetails(err.Error())
}

// classifyStatusError maps a non-2xx HTTP status onto the domain error
// taxonomy. The server's business error code and message, when present in
// the response envelope, are preserved as details.
func classifyStatusError(statusCode int, errorCode, details string) error {
	var base *domainerrors.BaseError
	switch {
	case statusCode == http.StatusBadRequest:
		base = domainerrors.ErrValidationFailed
	case statusCode == http.StatusUnauthorized:
		base = domainerrors.ErrAuthenticationRequired
	case statusCode == http.StatusForbidden:
		base = domainerrors.ErrForbidden
	case statusCode == http.StatusNotFound:
		base = domainerrors.ErrNotFound
	case statusCode == http.StatusConflict:
		base = domainerrors.ErrConflict
	case statusCode >= http.StatusInternalServerError:
		base = domainerrors.ErrRemoteServer
	default:
		base = domainerrors.ErrInternalError
	}

	if errorCode != "" {
		if details != "" {
			return base.WithDetails(errorCode + ": " + details)
		}

		return base.WithDetails(errorCode)
	}
	if details != "" {
		return base.WithDetails(details)
	}

	return base
}
