//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/handler/middleware"
	"petshop-api/internal/pkg/errs"
	"petshop-api/tests/common/httptest"
	commandsmock "petshop-api/tests/mock/commands"
	usecasemock "petshop-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	mockIdentity  *commandsmock.MockIdentityCommands
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.mockIdentity = commandsmock.NewMockIdentityCommands(s.mockCtrl)
	auth := middleware.NewAuthMiddleware(s.mockValidator, s.mockIdentity)

	whoami := func(c *gin.Context) {
		u, ok := middleware.GetUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.ID(), "role": u.Role().String()})
	}
	s.router.GET("/me", auth.RequireAuth(), whoami)
	s.router.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), whoami)
	s.router.GET("/unguarded-admin", auth.RequireAdmin(), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

type whoamiResponse struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

func (s *AuthMiddlewareTestSuite) expectUser(token string, role user.Role) *user.User {
	id := user.Identity{Subject: uuid.New(), Email: "staff@petshop.test"}
	u := user.ReconstructUser(id.Subject, id.Email, "Staff", role, time.Time{}, time.Time{})
	s.mockValidator.EXPECT().ValidateToken(gomock.Any(), token).Return(id, nil)
	s.mockIdentity.EXPECT().Reconcile(gomock.Any(), id).Return(u, nil)
	return u
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: reconciled user is available to handlers", func() {
		u := s.expectUser("good", user.RoleWorker)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good")
		var got whoamiResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(u.ID(), got.ID)
		s.Equal("worker", got.Role)
	})

	s.Run("error: missing bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: token rejected by validator", func() {
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "expired").
			Return(user.Identity{}, errs.New("token is expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: reconciliation failure is not exposed", func() {
		id := user.Identity{Subject: uuid.New(), Email: "staff@petshop.test"}
		s.mockValidator.EXPECT().ValidateToken(gomock.Any(), "good").Return(id, nil)
		s.mockIdentity.EXPECT().Reconcile(gomock.Any(), id).Return(nil, errs.New("connection refused"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection refused")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	s.Run("success: admin passes", func() {
		s.expectUser("owner", user.RoleAdmin)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "owner")
		var got whoamiResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("admin", got.Role)
	})

	s.Run("error: worker is forbidden", func() {
		s.expectUser("staff", user.RoleWorker)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "staff")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: used without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unguarded-admin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
