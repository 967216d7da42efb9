//go:build unit

package api_test

import (
	"net/http"
	"time"

	"petshop-api/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	workerUser = user.ReconstructUser(uuid.MustParse("6f1c2b9e-2f55-4b3f-9a55-0d7f3b1f2a10"), "recepcao@example.com", "Recepção", user.RoleWorker, time.Time{}, time.Time{})
	adminUser  = user.ReconstructUser(uuid.MustParse("0b4b1d55-8c3e-4b7e-a3d2-5d0a1f6c9e21"), "owner@petshop.test", "Dona", user.RoleAdmin, time.Time{}, time.Time{})
)

// fakeAuth stands in for RequireAuth: any bearer header authenticates as a
// worker, "Bearer admin" as an admin.
func fakeAuth(c *gin.Context) {
	switch c.GetHeader("Authorization") {
	case "":
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	case "Bearer admin":
		c.Set("user", adminUser)
	default:
		c.Set("user", workerUser)
	}
	c.Next()
}
