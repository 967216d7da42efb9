package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims is the subset of IdP access-token claims the API relies on.
type Claims struct {
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

type UserMetadata struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// EmailAddress prefers the top-level claim over user_metadata.
func (c *Claims) EmailAddress() string {
	if e := strings.TrimSpace(c.Email); e != "" {
		return e
	}
	return strings.TrimSpace(c.UserMetadata.Email)
}

// RSAKeySource resolves the public key for an RS* token by key id.
type RSAKeySource interface {
	RSAKey(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

type Verifier struct {
	secretKey []byte
	keys      RSAKeySource
}

// NewVerifier accepts HS* tokens when secretKey is set and RS* tokens when
// keys is non-nil.
func NewVerifier(secretKey string, keys RSAKeySource) *Verifier {
	var secret []byte
	if secretKey != "" {
		secret = []byte(secretKey)
	}
	return &Verifier{
		secretKey: secret,
		keys:      keys,
	}
}

func (v *Verifier) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if v.secretKey == nil {
				return nil, ErrInvalidToken
			}
			return v.secretKey, nil
		case *jwt.SigningMethodRSA:
			if v.keys == nil {
				return nil, ErrInvalidToken
			}
			kid, _ := token.Header["kid"].(string)
			return v.keys.RSAKey(ctx, kid)
		default:
			return nil, ErrInvalidToken
		}
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// SignHS256 issues an HS256 token. Used by local tooling and tests; the API
// itself never issues tokens.
func SignHS256(secretKey, subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
