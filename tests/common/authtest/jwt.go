//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"petshop-api/internal/pkg/config"
	"petshop-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity provider would.
type JWTHelper struct {
	cfg config.IdPConfig
}

func NewJWTHelper(cfg config.IdPConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject uuid.UUID, email string) string {
	t.Helper()
	token, err := jwt.SignHS256(h.cfg.JWTSecret, subject.String(), email, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject uuid.UUID, email string) string {
	t.Helper()
	token, err := jwt.SignHS256(h.cfg.JWTSecret, subject.String(), email, -time.Minute)
	require.NoError(t, err)
	return token
}

// CreateWrongSecretToken returns a well-formed token the API must reject.
func (h *JWTHelper) CreateWrongSecretToken(t *testing.T, subject uuid.UUID, email string) string {
	t.Helper()
	token, err := jwt.SignHS256(h.cfg.JWTSecret+"-other", subject.String(), email, time.Hour)
	require.NoError(t, err)
	return token
}
