package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driving"
)

// Ensure CredentialsService implements both the driving interface and
// the source the remote adapter signs requests with.
var (
	_ driving.CredentialsService = (*CredentialsService)(nil)
	_ driven.CredentialsSource   = (*CredentialsService)(nil)
)

// CredentialsService manages the stored App Store Connect key material.
// Credentials live in the secret store under three accounts; team keys
// store all three, individual keys omit the issuer.
type CredentialsService struct {
	store driven.SecretStore
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(store driven.SecretStore) *CredentialsService {
	return &CredentialsService{store: store}
}

// Save persists credentials to the secret store. An empty issuer ID
// (individual key) clears any previously stored issuer so a later Load
// does not mix modes.
func (s *CredentialsService) Save(_ context.Context, creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return fmt.Errorf("%w: key ID and private key are required", domain.ErrInvalidInput)
	}

	if creds.IssuerID == "" {
		if err := s.store.Delete(domain.AccountIssuerID); err != nil {
			return fmt.Errorf("clear issuer ID: %w", err)
		}
	} else if err := s.store.Set(domain.AccountIssuerID, creds.IssuerID); err != nil {
		return fmt.Errorf("store issuer ID: %w", err)
	}
	if err := s.store.Set(domain.AccountKeyID, creds.KeyID); err != nil {
		return fmt.Errorf("store key ID: %w", err)
	}
	if err := s.store.Set(domain.AccountPrivateKey, creds.PrivateKey); err != nil {
		return fmt.Errorf("store private key: %w", err)
	}
	return nil
}

// Load reads credentials from the secret store. A missing issuer ID is
// not an error: it selects individual-key authentication. Missing key
// ID or private key is domain.ErrCredentialsMissing.
func (s *CredentialsService) Load(_ context.Context) (*domain.Credentials, error) {
	keyID, err := s.store.Get(domain.AccountKeyID)
	if err != nil {
		return nil, fmt.Errorf("%w: key ID not stored", domain.ErrCredentialsMissing)
	}
	privateKey, err := s.store.Get(domain.AccountPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: private key not stored", domain.ErrCredentialsMissing)
	}

	creds := &domain.Credentials{KeyID: keyID, PrivateKey: privateKey}
	if issuerID, err := s.store.Get(domain.AccountIssuerID); err == nil {
		creds.IssuerID = issuerID
	} else if !errors.Is(err, domain.ErrCredentialsMissing) {
		return nil, fmt.Errorf("read issuer ID: %w", err)
	}
	return creds, nil
}

// Credentials implements driven.CredentialsSource for the remote
// adapter.
func (s *CredentialsService) Credentials(ctx context.Context) (*domain.Credentials, error) {
	return s.Load(ctx)
}

// Clear removes all stored secrets and reports which accounts actually
// held one.
func (s *CredentialsService) Clear(_ context.Context) ([]string, error) {
	var cleared []string
	for _, account := range []string{domain.AccountIssuerID, domain.AccountKeyID, domain.AccountPrivateKey} {
		if _, err := s.store.Get(account); err != nil {
			continue
		}
		if err := s.store.Delete(account); err != nil {
			return cleared, fmt.Errorf("delete %s: %w", account, err)
		}
		cleared = append(cleared, account)
	}
	return cleared, nil
}
