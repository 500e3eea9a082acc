//go:build unit

package api_test

import (
	nethttptest "net/http/httptest"
	"testing"

	"lending-core/internal/domain/user"
	"lending-core/internal/handler/middleware"
	"lending-core/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	memberActor    = user.NewActor(uuid.New(), user.RoleMember)
	librarianActor = user.NewActor(uuid.New(), user.RoleLibrarian)
	adminActor     = user.NewActor(uuid.New(), user.RoleAdmin)
)

// as stands in for RequireAuth. The X-Test-Role header picks the actor and
// an absent header leaves the context without one.
func as(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetHeader("X-Test-Role") {
		case "member":
			middleware.SetActor(c, memberActor)
		case "librarian":
			middleware.SetActor(c, librarianActor)
		case "admin":
			middleware.SetActor(c, adminActor)
		}
		h(c)
	}
}

func perform(t *testing.T, router *gin.Engine, method, path string, body any, role string) *nethttptest.ResponseRecorder {
	t.Helper()
	headers := map[string]string{}
	if role != "" {
		headers["X-Test-Role"] = role
	}
	return httptest.PerformRequestWithHeaders(t, router, method, path, body, nil, headers)
}
