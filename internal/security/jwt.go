package security

import (
	"strings"
	"time"

	"github.com/pairpad/collab-service/internal/errs"

	"github.com/golang-jwt/jwt"
)

// TokenSigner issues and validates HS256 access tokens.
// The signing secret must be provided explicitly; there is no fallback value.
type TokenSigner struct {
	secret    []byte
	issuer    string
	ttl       time.Duration
	clockSkew time.Duration
	now       func() time.Time
}

func NewTokenSigner(secret []byte, issuer string, ttl, clockSkew time.Duration, now func() time.Time) (*TokenSigner, error) {
	if len(secret) == 0 {
		return nil, errs.ErrMissingSecret
	}
	if now == nil {
		now = time.Now
	}

	return &TokenSigner{
		secret:    secret,
		issuer:    issuer,
		ttl:       ttl,
		clockSkew: clockSkew,
		now:       now,
	}, nil
}

func (s *TokenSigner) TTL() time.Duration {
	return s.ttl
}

type AccessClaims struct {
	jwt.StandardClaims
}

// Issue signs a token with sub=subject and exp=now+ttl.
// Distinct issuances for the same subject are independent.
func (s *TokenSigner) Issue(subject string) (string, error) {
	now := s.now()
	claims := AccessClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  now.Unix(),
			NotBefore: now.Add(-s.clockSkew).Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ParseAndValidate checks signature, issuer and the time claims.
// Expiry is reported separately from all other failures.
func (s *TokenSigner) ParseAndValidate(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errs.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errs.ErrInvalidToken
	}
	if !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, errs.ErrInvalidIssuer
	}

	now := s.now()
	nbf := time.Unix(claims.NotBefore, 0).Add(-s.clockSkew)
	exp := time.Unix(claims.ExpiresAt, 0).Add(s.clockSkew)
	if now.Before(nbf) || now.After(exp) {
		return nil, errs.ErrTokenExpired
	}

	return claims, nil
}

// Subject extracts the subject identifier from validated claims.
func Subject(claims *AccessClaims) (string, error) {
	if claims == nil || strings.TrimSpace(claims.Subject) == "" {
		return "", errs.ErrInvalidSubject
	}

	return claims.Subject, nil
}
