package driven

// SecretStore persists opaque secrets addressed by account name within
// a fixed service namespace. The production implementation is the OS
// keychain; tests use the in-memory adapter.
type SecretStore interface {
	// Set stores a secret under the given account, overwriting any
	// previous value.
	Set(account, secret string) error

	// Get retrieves the secret for an account. Returns
	// domain.ErrCredentialsMissing (wrapped) when absent.
	Get(account string) (string, error)

	// Delete removes the secret for an account. Deleting an absent
	// account is not an error.
	Delete(account string) error
}
