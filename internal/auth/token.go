package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"DOCSHELF_BACK-END/internal/apperr"
)

// TokenManager issues and verifies HS256 access tokens whose subject is the user's email.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// tokenPrecision is the resolution of the iat, nbf and exp claims.
const tokenPrecision = time.Millisecond

func init() {
	// NumericDate defaults to whole seconds, which would cut up to a second off the TTL.
	jwt.TimePrecision = tokenPrecision
}

// Option configures a TokenManager.
type Option func(*TokenManager)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) { m.now = now }
}

// WithIssuer sets the iss claim written and required on verification.
func WithIssuer(issuer string) Option {
	return func(m *TokenManager) { m.issuer = issuer }
}

// NewTokenManager creates a TokenManager signing with secret; tokens live for ttl.
func NewTokenManager(secret string, ttl time.Duration, opts ...Option) *TokenManager {
	m := &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the validity window of issued tokens.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue signs a token for subject. It expires TTL after its iat; claim times
// carry millisecond precision.
func (m *TokenManager) Issue(subject string) (string, time.Time, error) {
	issuedAt := m.now().Truncate(tokenPrecision)
	expiresAt := issuedAt.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, expiry and subject, in that order, and returns the subject.
// Failures are *apperr.Error values of kind auth with the matching reason.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return "", tokenError(err)
	}

	if claims.Subject == "" {
		return "", apperr.Auth(apperr.ReasonMalformed, "token has no subject")
	}
	return claims.Subject, nil
}

func tokenError(err error) *apperr.Error {
	var appErr *apperr.Error
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		appErr = apperr.Auth(apperr.ReasonInvalidSignature, "token signature is invalid")
	case errors.Is(err, jwt.ErrTokenExpired):
		appErr = apperr.Auth(apperr.ReasonExpired, "token has expired")
	default:
		appErr = apperr.Auth(apperr.ReasonMalformed, "token is malformed")
	}
	appErr.Err = err
	return appErr
}
