package domain

import "strings"

// Secret store account names under which key material is persisted.
const (
	AccountIssuerID   = "issuerID"
	AccountKeyID      = "keyID"
	AccountPrivateKey = "privateKey"
)

// Credentials is the App Store Connect API key material for one run.
// It is loaded from the secret store once per invocation and threaded
// into the components that need it; there is no process-wide state.
type Credentials struct {
	// IssuerID identifies the team that issued the key. Empty for
	// individual API keys, which authenticate without an issuer.
	IssuerID string `json:"issuer_id,omitempty"`
	// KeyID is the API key identifier (the "kid" of the signed token).
	KeyID string `json:"key_id"`
	// PrivateKey is the base64 DER payload of the .p8 key, with the
	// PEM armor already stripped.
	PrivateKey string `json:"private_key"`
}

// IsIndividual reports whether the key authenticates in individual
// mode (no issuer) rather than team mode.
func (c Credentials) IsIndividual() bool {
	return c.IssuerID == ""
}

// Validate checks that the required fields are present.
func (c Credentials) Validate() error {
	if c.KeyID == "" || c.PrivateKey == "" {
		return ErrCredentialsMissing
	}
	return nil
}

// StripPEMArmor reduces a PEM-formatted private key to its base64
// payload: the BEGIN/END lines and every newline are removed. Input
// that carries no armor is returned with whitespace stripped only.
func StripPEMArmor(pem string) string {
	var b strings.Builder
	for _, line := range strings.Split(pem, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-----") {
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}
