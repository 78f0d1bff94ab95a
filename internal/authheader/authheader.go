// Package authheader extracts credentials from Authorization header values.
package authheader

import (
	"errors"
	"strings"
)

const (
	bearerPrefix = "Bearer "
	apiKeyPrefix = "ApiKey "
)

// ErrMissingBearer is returned when the header carries no bearer credential.
var ErrMissingBearer = errors.New("authorization header is missing bearer token")

// Bearer returns the token following "Bearer ".
func Bearer(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingBearer
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), nil
}

// APIKey returns the key following "ApiKey ", or "" when the header has none.
func APIKey(header string) string {
	if !strings.HasPrefix(header, apiKeyPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, apiKeyPrefix))
}
