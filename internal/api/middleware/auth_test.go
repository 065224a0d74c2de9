package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/origin-platform/rights-ledger/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true, BreadcrumbLevel: zapcore.DebugLevel}); err != nil {
		panic(err)
	}
	m.Run()
}

type jwtFixture struct {
	key       *rsa.PrivateKey
	publicPEM string
}

func newJWTFixture(t *testing.T) *jwtFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	publicPEM := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
	return &jwtFixture{key: key, publicPEM: publicPEM}
}

func (f *jwtFixture) token(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func TestAuthenticateJWT(t *testing.T) {
	fixture := newJWTFixture(t)
	cfg := AuthConfig{JWTPublicKey: fixture.publicPEM}

	token := fixture.token(t, "creator-1", time.Now().Add(time.Hour))
	result := Authenticate("Bearer "+token, cfg)

	require.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, "creator-1", result.AuthSubject)
	require.NotNil(t, result.Claims)
	assert.Equal(t, "creator-1", result.Claims.Subject)
}

func TestAuthenticateExpiredJWT(t *testing.T) {
	fixture := newJWTFixture(t)
	cfg := AuthConfig{JWTPublicKey: fixture.publicPEM}

	token := fixture.token(t, "creator-1", time.Now().Add(-time.Hour))
	result := Authenticate("Bearer "+token, cfg)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticateJWTWrongKey(t *testing.T) {
	signer := newJWTFixture(t)
	verifier := newJWTFixture(t)
	cfg := AuthConfig{JWTPublicKey: verifier.publicPEM}

	token := signer.token(t, "creator-1", time.Now().Add(time.Hour))
	result := Authenticate("Bearer "+token, cfg)

	assert.False(t, result.Success)
}

func TestAuthenticateAPIKey(t *testing.T) {
	cfg := AuthConfig{APIKeys: []string{"key-one", "key-two"}}

	result := Authenticate("APIKey key-two", cfg)
	require.True(t, result.Success)
	assert.Equal(t, "apikey", result.AuthType)
	assert.Empty(t, result.AuthSubject)

	result = Authenticate("APIKey bogus", cfg)
	assert.False(t, result.Success)
}

func TestAuthenticateMalformedHeaders(t *testing.T) {
	cfg := AuthConfig{APIKeys: []string{"key-one"}}

	for _, header := range []string{"", "Bearer", "Basic dXNlcjpwYXNz"} {
		result := Authenticate(header, cfg)
		assert.False(t, result.Success, "header %q should fail", header)
		assert.Error(t, result.Error)
	}
}

func TestAuthenticateNoKeysConfigured(t *testing.T) {
	result := Authenticate("APIKey anything", AuthConfig{})
	assert.False(t, result.Success)
}
