package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/handler/httperr"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase"
	"petshop-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "user"

var (
	errTokenRequired = errs.New("access token required")
	errInvalidToken  = errs.New("invalid or expired token")
	errForbidden     = errs.New("insufficient permissions")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	identity       commands.IdentityCommands
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, identity commands.IdentityCommands) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		identity:       identity,
	}
}

// RequireAuth verifies the bearer token and resolves the caller to a local
// user, creating it on first sight.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidToken, "Invalid or expired token", nil)
			return
		}

		u, err := m.identity.Reconcile(c.Request.Context(), identity)
		if err != nil {
			slog.Error("identity reconciliation failed", "subject", identity.Subject, "error", err.Error())
			httperr.Abort(c, err)
			return
		}

		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := GetUser(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.Abort(c, errs.New("admin check without authenticated user"))
			return
		}
		if !u.IsAdmin() {
			httperr.AbortWithError(c, http.StatusForbidden, errForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUser(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}
