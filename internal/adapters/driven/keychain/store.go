// Package keychain persists secrets in the operating system keychain
// via go-keyring (macOS Keychain, Secret Service on Linux, Credential
// Manager on Windows).
package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
)

// DefaultService is the keychain service namespace secrets are filed
// under.
const DefaultService = "ascribe"

// Ensure SecretStore implements the interface.
var _ driven.SecretStore = (*SecretStore)(nil)

// SecretStore is the OS-keychain implementation of driven.SecretStore.
type SecretStore struct {
	service string
}

// NewSecretStore creates a keychain-backed secret store. An empty
// service name falls back to DefaultService.
func NewSecretStore(service string) *SecretStore {
	if service == "" {
		service = DefaultService
	}
	return &SecretStore{service: service}
}

// Set stores a secret under the given account.
func (s *SecretStore) Set(account, secret string) error {
	if err := keyring.Set(s.service, account, secret); err != nil {
		return fmt.Errorf("keychain set %s: %w", account, err)
	}
	return nil
}

// Get retrieves the secret for an account. A secret the keychain does
// not hold maps to domain.ErrCredentialsMissing.
func (s *SecretStore) Get(account string) (string, error) {
	secret, err := keyring.Get(s.service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: account %q", domain.ErrCredentialsMissing, account)
		}
		return "", fmt.Errorf("keychain get %s: %w", account, err)
	}
	return secret, nil
}

// Delete removes the secret for an account. Deleting an absent secret
// is not an error.
func (s *SecretStore) Delete(account string) error {
	if err := keyring.Delete(s.service, account); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keychain delete %s: %w", account, err)
	}
	return nil
}
