package connect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
)

// APIError is an App Store Connect JSON:API error response. Code
// carries the machine-readable error code (e.g.
// "ENTITY_ERROR.ATTRIBUTE.INVALID.DUPLICATE"); Detail carries the
// human-readable explanation verbatim for diagnosis.
type APIError struct {
	StatusCode int
	Code       string
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("connect: API error %d %s: %s", e.StatusCode, e.Code, e.Detail)
	}
	return fmt.Sprintf("connect: API error %d: %s", e.StatusCode, e.Detail)
}

// asAPIError unwraps an APIError from an error chain.
func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether the error is a remote 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsUnauthorized reports whether the error is an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// classifyVersionConflict maps a version-create rejection onto the
// domain sentinel the reconciler dispatches on. The machine-readable
// code field is authoritative; the human-readable detail is inspected
// only when the payload carries no code, since Apple does not
// guarantee its wording.
func classifyVersionConflict(apiErr *APIError) error {
	if apiErr.StatusCode != 409 {
		return apiErr
	}

	if apiErr.Code != "" {
		switch {
		case strings.Contains(apiErr.Code, "DUPLICATE"):
			return fmt.Errorf("%w: %s", domain.ErrVersionExists, apiErr.Detail)
		case strings.Contains(apiErr.Code, "STATE_ERROR"),
			strings.Contains(apiErr.Code, "FORBIDDEN"):
			return fmt.Errorf("%w: %s", domain.ErrVersionNotPermitted, apiErr.Detail)
		}
		return apiErr
	}

	// Fallback: substring inspection of the detail text.
	detail := strings.ToLower(apiErr.Detail)
	switch {
	case strings.Contains(detail, "already exists"), strings.Contains(detail, "duplicate"):
		return fmt.Errorf("%w: %s", domain.ErrVersionExists, apiErr.Detail)
	case strings.Contains(detail, "cannot be created"), strings.Contains(detail, "state"):
		return fmt.Errorf("%w: %s", domain.ErrVersionNotPermitted, apiErr.Detail)
	}
	return apiErr
}

// classifySubmissionItemError maps the missing-build rejection onto
// domain.ErrBuildMissing so the CLI can point the user at
// select-build. Everything else propagates as-is.
func classifySubmissionItemError(apiErr *APIError) error {
	if apiErr.StatusCode != 409 {
		return apiErr
	}
	haystack := strings.ToLower(apiErr.Code + " " + apiErr.Detail)
	if strings.Contains(haystack, "build") {
		return fmt.Errorf("%w: %s", domain.ErrBuildMissing, apiErr.Detail)
	}
	return apiErr
}
