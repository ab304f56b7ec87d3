package connect

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
)

const (
	// tokenAudience is the fixed audience claim Apple expects.
	tokenAudience = "appstoreconnect-v1"

	// tokenLifetime is the signed token validity. Apple rejects
	// anything above 20 minutes.
	tokenLifetime = 20 * time.Minute

	// tokenRefreshMargin re-mints a cached token this long before it
	// expires so an in-flight request never carries a stale one.
	tokenRefreshMargin = 2 * time.Minute
)

// tokenSource mints and caches ES256-signed bearer tokens for the API.
// Credentials are loaded lazily from the source on first use, so
// commands that never reach the network work without stored secrets.
type tokenSource struct {
	creds driven.CredentialsSource

	mu      sync.Mutex
	token   string
	expires time.Time
}

func newTokenSource(creds driven.CredentialsSource) *tokenSource {
	return &tokenSource{creds: creds}
}

// Token returns a valid bearer token, reusing the cached one until it
// nears expiry.
func (t *tokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Now().Before(t.expires.Add(-tokenRefreshMargin)) {
		return t.token, nil
	}

	creds, err := t.creds.Credentials(ctx)
	if err != nil {
		return "", err
	}

	token, expires, err := signToken(*creds, time.Now())
	if err != nil {
		return "", err
	}
	t.token = token
	t.expires = expires
	return token, nil
}

// signToken builds and signs the Apple-flavoured JWT. Team keys carry
// the issuer claim; individual keys authenticate via a fixed subject
// instead.
func signToken(creds domain.Credentials, now time.Time) (string, time.Time, error) {
	key, err := parsePrivateKey(creds.PrivateKey)
	if err != nil {
		return "", time.Time{}, err
	}

	expires := now.Add(tokenLifetime)
	claims := jwt.MapClaims{
		"aud": tokenAudience,
		"iat": now.Unix(),
		"exp": expires.Unix(),
	}
	if creds.IsIndividual() {
		claims["sub"] = "user"
	} else {
		claims["iss"] = creds.IssuerID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = creds.KeyID

	signed, err := token.SignedString(key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// parsePrivateKey decodes the stored base64 DER payload into the ECDSA
// key the .p8 file contained.
func parsePrivateKey(payload string) (*ecdsa.PrivateKey, error) {
	der, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, expected ECDSA", parsed)
	}
	return key, nil
}
