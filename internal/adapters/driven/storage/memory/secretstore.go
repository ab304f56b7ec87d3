// Package memory provides in-memory adapter implementations for tests
// and for environments without an OS keychain.
package memory

import (
	"fmt"
	"sync"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
)

// Ensure SecretStore implements the interface.
var _ driven.SecretStore = (*SecretStore)(nil)

// SecretStore is an in-memory implementation of driven.SecretStore.
// Secrets do not survive the process.
type SecretStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewSecretStore creates a new in-memory secret store.
func NewSecretStore() *SecretStore {
	return &SecretStore{
		secrets: make(map[string]string),
	}
}

// Set stores a secret under the given account.
func (s *SecretStore) Set(account, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[account] = secret
	return nil
}

// Get retrieves the secret for an account.
func (s *SecretStore) Get(account string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	secret, ok := s.secrets[account]
	if !ok {
		return "", fmt.Errorf("%w: account %q", domain.ErrCredentialsMissing, account)
	}
	return secret, nil
}

// Delete removes the secret for an account.
func (s *SecretStore) Delete(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, account)
	return nil
}
