package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialMissing signals that an upstream credential is not configured.
	ErrCredentialMissing = errors.New("credential not configured")
	// ErrUpstreamUnavailable signals a transport-level upstream failure.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// CredentialMissingError wraps ErrCredentialMissing with the name of the
// environment variable that would supply the credential.
type CredentialMissingError struct {
	Key string
}

func (e *CredentialMissingError) Error() string {
	return fmt.Sprintf("%s not configured", e.Key)
}

func (e *CredentialMissingError) Unwrap() error { return ErrCredentialMissing }

// NewCredentialMissing creates a configuration error for a missing credential.
func NewCredentialMissing(key string) error {
	return &CredentialMissingError{Key: key}
}
